package sheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	got := URL(BaseURL, "abc123", "Public data")
	want := "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?sheet=Public+data&tqx=out%3Ajson"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestFetchTable(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		statusCode    int
		wantTransport bool
		wantMalformed bool
		wantRows      int
	}{
		{
			name:       "successful fetch",
			body:       samplePayload,
			statusCode: http.StatusOK,
			wantRows:   3,
		},
		{
			name:          "HTTP error",
			statusCode:    http.StatusNotFound,
			wantTransport: true,
		},
		{
			name:          "server error",
			statusCode:    http.StatusInternalServerError,
			wantTransport: true,
		},
		{
			name:          "unshared sheet",
			body:          `<html><head><title>Sign in</title></head></html>`,
			statusCode:    http.StatusOK,
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "lostfound") {
					t.Errorf("User-Agent = %q, should contain 'lostfound'", ua)
				}
				if r.URL.Path != "/sheet-1/gviz/tq" {
					t.Errorf("path = %q, want /sheet-1/gviz/tq", r.URL.Path)
				}
				if got := r.URL.Query().Get("sheet"); got != "Public_data" {
					t.Errorf("sheet query = %q, want Public_data", got)
				}
				if got := r.URL.Query().Get("tqx"); got != "out:json" {
					t.Errorf("tqx query = %q, want out:json", got)
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(WithBaseURL(server.URL + "/"))
			table, err := c.FetchTable(context.Background(), "sheet-1", "Public_data")

			switch {
			case tt.wantTransport:
				var te *TransportError
				if !errors.As(err, &te) {
					t.Fatalf("FetchTable() error = %v, want *TransportError", err)
				}
				if te.StatusCode != tt.statusCode {
					t.Errorf("StatusCode = %d, want %d", te.StatusCode, tt.statusCode)
				}
				if IsMalformed(err) {
					t.Error("transport error should not be malformed")
				}
			case tt.wantMalformed:
				if !IsMalformed(err) {
					t.Fatalf("FetchTable() error = %v, want malformed", err)
				}
			default:
				if err != nil {
					t.Fatalf("FetchTable() unexpected error: %v", err)
				}
				if table.Len() != tt.wantRows {
					t.Errorf("Len() = %d, want %d", table.Len(), tt.wantRows)
				}
			}
		})
	}
}

func TestNew(t *testing.T) {
	c := New()

	if c.client == nil {
		t.Fatal("client is nil")
	}
	if c.baseURL != BaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, BaseURL)
	}
	if c.client.Timeout != Timeout {
		t.Errorf("Timeout = %v, want %v", c.client.Timeout, Timeout)
	}

	c = New(WithTimeout(0), WithUserAgent(""))
	if c.client.Timeout != Timeout || c.userAgent != UserAgent {
		t.Error("zero-valued options should keep defaults")
	}
}
