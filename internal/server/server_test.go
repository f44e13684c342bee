package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer() *Server {
	return New(log.NewWithOptions(io.Discard, log.Options{}))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestPositionEndpoint(t *testing.T) {
	srv := newTestServer()

	body := `{
		"viewport": {"width": 1000, "height": 1000},
		"anchor": {"left": 50, "top": 100, "width": 100, "height": 20},
		"floating": {"width": 80, "height": 30}
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/position", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body)
	}

	var result struct {
		Top  float64 `json:"top"`
		Left float64 `json:"left"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if result.Top != 130 || result.Left != 50 {
		t.Errorf("result = %+v, want {130 50}", result)
	}
}

func TestPositionEndpointSetsRequestID(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry a generated X-Request-ID header")
	}
}

func TestPositionEndpointKeepsClientRequestID(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "client-id")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "client-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "client-id")
	}
}

func TestPositionEndpointRejectsBadScene(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "malformed JSON",
			body: `{`,
			want: http.StatusBadRequest,
		},
		{
			name: "zero viewport",
			body: `{"viewport": {"width": 0, "height": 0}, "anchor": {}, "floating": {"width": 10, "height": 10}}`,
			want: http.StatusBadRequest,
		},
		{
			name: "centered outside",
			body: `{
				"viewport": {"width": 100, "height": 100},
				"anchor": {"left": 10, "top": 10, "width": 10, "height": 10},
				"floating": {"width": 10, "height": 10},
				"settings": {"placement": "outside", "side": "centered"}
			}`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/position", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.want, rec.Body)
			}

			var envelope struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("json.Unmarshal() error: %v", err)
			}
			if envelope.Error.Code == "" {
				t.Error("error response should carry a machine-readable code")
			}
		})
	}
}
