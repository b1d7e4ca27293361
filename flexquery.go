package flexfolio

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// FlexServiceBaseURL is the broker's statement generation endpoint (v3).
const FlexServiceBaseURL = "https://gdcdyn.interactivebrokers.com/Universal/servlet/FlexStatementService"

const (
	fetchPollStep = 100 * time.Millisecond
	fetchTimeout  = 2 * time.Minute
)

// flexServiceResponse is the service's XML envelope: present while a request
// is acknowledged or still being generated, absent once the statement body
// itself is served.
type flexServiceResponse struct {
	Status        string `xml:"Status"`
	ReferenceCode string `xml:"ReferenceCode"`
	URL           string `xml:"Url"`
	ErrorCode     string `xml:"ErrorCode"`
	ErrorMessage  string `xml:"ErrorMessage"`
}

// FlexClient fetches generated statements from the Flex Web Service.
// The zero value is not usable; call NewFlexClient.
type FlexClient struct {
	// BaseURL of the service, FlexServiceBaseURL unless overridden.
	BaseURL string
	// Client used for all requests. Responses are never disk-cached here:
	// polling must observe fresh generation status.
	Client *http.Client
}

// NewFlexClient returns a client against the production service.
func NewFlexClient() *FlexClient {
	return &FlexClient{BaseURL: FlexServiceBaseURL, Client: &http.Client{Timeout: 30 * time.Second}}
}

// Fetch requests generation of the statement identified by queryID and polls
// until the document is served, returning the raw statement bytes. Generation
// is asynchronous on the broker side; the poll runs every 100ms under ctx and
// a 2 minute ceiling.
func (c *FlexClient) Fetch(ctx context.Context, token, queryID string) ([]byte, error) {
	log.Printf("requesting statement generation for query %s", queryID)
	reference, statementURL, err := c.request(ctx, token, queryID)
	if err != nil {
		return nil, err
	}

	log.Printf("downloading statement %s", reference)
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	return c.download(ctx, statementURL, token, reference)
}

// request performs the SendRequest step and returns the reference code and
// download URL for the generated statement.
func (c *FlexClient) request(ctx context.Context, token, queryID string) (reference, statementURL string, err error) {
	addr := fmt.Sprintf("%s.SendRequest?t=%s&q=%s&v=3", c.BaseURL, url.QueryEscape(token), url.QueryEscape(queryID))
	body, err := c.get(ctx, addr)
	if err != nil {
		return "", "", err
	}
	var response flexServiceResponse
	if err := xml.Unmarshal(body, &response); err != nil {
		return "", "", fmt.Errorf("invalid flex service response: %w", err)
	}
	if response.Status != "Success" {
		return "", "", fmt.Errorf("flex statement request refused: %s %s", response.ErrorCode, response.ErrorMessage)
	}
	if response.ReferenceCode == "" || response.URL == "" {
		return "", "", fmt.Errorf("flex service response without reference code or url")
	}
	return response.ReferenceCode, response.URL, nil
}

// download polls the statement URL until the body stops being a generation
// status envelope and is the statement itself.
func (c *FlexClient) download(ctx context.Context, statementURL, token, reference string) ([]byte, error) {
	addr := fmt.Sprintf("%s?t=%s&q=%s&v=3", statementURL, url.QueryEscape(token), url.QueryEscape(reference))
	for {
		body, err := c.get(ctx, addr)
		if err != nil {
			return nil, err
		}
		var response flexServiceResponse
		if xml.Unmarshal(body, &response) != nil || response.Status == "" {
			// Not a status envelope: this is the statement.
			return body, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("statement %s not ready: %w", reference, ctx.Err())
		case <-time.After(fetchPollStep):
		}
	}
}

func (c *FlexClient) get(ctx context.Context, addr string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
