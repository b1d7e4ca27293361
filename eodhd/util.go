package eodhd

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/flexfolio"
)

// cachingTransport stores successful HTTP responses on disk. The cache key
// includes the current day, so every entry expires at midnight: end-of-day
// prices do not change more often than that.
type cachingTransport struct {
	base http.RoundTripper
}

func (c *cachingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", flexfolio.Today(), req.Method, req.URL.String())
	file := filepath.Join(os.TempDir(), fmt.Sprintf("eodhd-%x", sha1.Sum([]byte(key))))

	if resp, err := c.read(file, req); err == nil {
		return resp, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		// Error responses are served but never cached.
		return resp, nil
	}
	if err := c.write(file, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *cachingTransport) read(file string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

func (c *cachingTransport) write(file string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(file, content, 0644)
}

// daily returns a client whose responses are cached until the end of the day.
func daily() *http.Client {
	return &http.Client{Transport: &cachingTransport{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the
// provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
