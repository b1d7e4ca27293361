package eodhd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/flexfolio"
)

func TestPrices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/eod/AAPL.US" {
			t.Errorf("path = %q, want /eod/AAPL.US", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_token") != "demo" || q.Get("fmt") != "json" {
			t.Errorf("query = %v", q)
		}
		if q.Get("from") != "2018-02-05" || q.Get("to") != "2018-02-09" {
			t.Errorf("range = %q .. %q", q.Get("from"), q.Get("to"))
		}
		fmt.Fprint(w, `[
		 {"date":"2018-02-05","open":159.1,"high":163.88,"low":156.0,"close":156.49,"adjusted_close":37.01,"volume":72738522},
		 {"date":"2018-02-06","open":154.83,"high":163.72,"low":154.0,"close":163.03,"adjusted_close":38.56,"volume":68243838}
		]`)
	}))
	defer server.Close()

	src := NewSource("demo")
	src.BaseURL = server.URL

	prices, err := src.Prices("AAPL", flexfolio.NewDate(2018, 2, 5), flexfolio.NewDate(2018, 2, 9))
	if err != nil {
		t.Fatalf("Prices() error = %v", err)
	}
	want := (&flexfolio.Series{}).
		Append(flexfolio.NewDate(2018, 2, 5), 37.01).
		Append(flexfolio.NewDate(2018, 2, 6), 38.56)
	if !prices.Equal(want) {
		t.Errorf("Prices() = %v, want %v", prices, want)
	}
}

func TestPrices_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	src := NewSource("bad")
	src.BaseURL = server.URL
	if _, err := src.Prices("AAPL", flexfolio.NewDate(2018, 2, 5), flexfolio.NewDate(2018, 2, 9)); err == nil {
		t.Fatal("Prices() expected an error on 403")
	}
}
