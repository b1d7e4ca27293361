package flexfolio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFlexClient_Fetch(t *testing.T) {
	const statement = `<FlexQueryResponse queryName="weekly"><FlexStatements/></FlexQueryResponse>`

	var polls int
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/service.SendRequest", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("t") != "TOKEN" || q.Get("q") != "42" || q.Get("v") != "3" {
			t.Errorf("unexpected request query %v", q)
		}
		fmt.Fprintf(w, `<FlexStatementResponse timestamp="x">
		 <Status>Success</Status>
		 <ReferenceCode>1234567890</ReferenceCode>
		 <Url>%s/statement</Url>
		</FlexStatementResponse>`, server.URL)
	})
	mux.HandleFunc("/statement", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("t") != "TOKEN" || q.Get("q") != "1234567890" || q.Get("v") != "3" {
			t.Errorf("unexpected download query %v", q)
		}
		polls++
		if polls == 1 {
			// Still generating: a status envelope instead of the statement.
			fmt.Fprint(w, `<FlexStatementResponse><Status>Warn</Status><ErrorCode>1019</ErrorCode><ErrorMessage>Statement generation in progress.</ErrorMessage></FlexStatementResponse>`)
			return
		}
		fmt.Fprint(w, statement)
	})

	client := NewFlexClient()
	client.BaseURL = server.URL + "/service"
	body, err := client.Fetch(context.Background(), "TOKEN", "42")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != statement {
		t.Errorf("Fetch() = %q, want the statement body", body)
	}
	if polls != 2 {
		t.Errorf("polled %d times, want 2", polls)
	}
}

func TestFlexClient_RequestRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<FlexStatementResponse><Status>Fail</Status><ErrorCode>1012</ErrorCode><ErrorMessage>Token has expired.</ErrorMessage></FlexStatementResponse>`)
	}))
	defer server.Close()

	client := NewFlexClient()
	client.BaseURL = server.URL + "/service"
	_, err := client.Fetch(context.Background(), "STALE", "42")
	if err == nil || !strings.Contains(err.Error(), "1012") {
		t.Fatalf("Fetch() error = %v, want the service error code", err)
	}
}

func TestFlexClient_PollCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".SendRequest") {
			fmt.Fprintf(w, `<FlexStatementResponse><Status>Success</Status><ReferenceCode>1</ReferenceCode><Url>%s/statement</Url></FlexStatementResponse>`, "http://"+r.Host)
			return
		}
		// Never ready.
		fmt.Fprint(w, `<FlexStatementResponse><Status>Warn</Status></FlexStatementResponse>`)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	client := NewFlexClient()
	client.BaseURL = server.URL + "/service"
	_, err := client.Fetch(ctx, "TOKEN", "42")
	if err == nil {
		t.Fatal("Fetch() expected an error after cancellation")
	}
}
