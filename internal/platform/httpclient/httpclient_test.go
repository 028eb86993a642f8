package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"animal-control-admin/internal/platform/metrics"
	"animal-control-admin/internal/session"
)

func TestDoJSON_AttachesBearerFromSession(t *testing.T) {
	var gotAuth, gotCT string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}
	c.Metrics = metrics.New()

	ctx := session.WithSession(context.Background(), session.New("tok-1"))
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(ctx, http.MethodPost, "things", nil, map[string]string{"a": "b"}, &out); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected decoded body")
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Fatalf("expected json content type, got %q", gotCT)
	}
}

func TestDoJSON_NoSessionNoAuthHeader(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	if err := c.DoJSON(context.Background(), http.MethodDelete, "/things/1", nil, nil, nil); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/things/9", nil, nil, nil)

	var he *HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *HTTPError, got %T %v", err, err)
	}
	if he.StatusCode != http.StatusNotFound || he.Body != "record not found" {
		t.Fatalf("unexpected error fields: %#v", he)
	}
	if !strings.Contains(err.Error(), "404 Not Found") {
		t.Fatalf("expected status text in message, got %q", err.Error())
	}
	if st, ok := StatusOf(err); !ok || st != http.StatusNotFound {
		t.Fatalf("StatusOf: expected 404, got %d %v", st, ok)
	}
}

func TestDoMultipart_SendsFile(t *testing.T) {
	var gotName, gotContent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotName = hdr.Filename
		gotContent = string(b)
		_, _ = w.Write([]byte(`{"url":"https://cdn.test/x.png"}`))
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	var out struct {
		URL string `json:"url"`
	}
	if err := c.DoMultipart(context.Background(), "/upload", "file", "x.png", strings.NewReader("PNGDATA"), &out); err != nil {
		t.Fatalf("DoMultipart: %v", err)
	}
	if gotName != "x.png" || gotContent != "PNGDATA" {
		t.Fatalf("unexpected upload: name=%q content=%q", gotName, gotContent)
	}
	if out.URL != "https://cdn.test/x.png" {
		t.Fatalf("unexpected url %q", out.URL)
	}
}

func TestResolveURL_RelativeWithoutBase(t *testing.T) {
	c := New(0)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil, nil); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
}

type brokenBody struct{}

func (brokenBody) Read(p []byte) (int, error) { return 0, errors.New("connection reset") }
func (brokenBody) Close() error               { return nil }

type brokenTransport struct{}

func (brokenTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       brokenBody{},
		Request:    r,
	}, nil
}

func TestDoJSON_BodyReadErrorIsReturned(t *testing.T) {
	c, err := NewWithTransport("http://api.test", time.Second, brokenTransport{})
	if err != nil {
		t.Fatalf("NewWithTransport: %v", err)
	}
	var out []map[string]any
	err = c.DoJSON(context.Background(), http.MethodGet, "/things", nil, nil, &out)
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestDoJSON_EmptySuccessBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, _ := NewWithBaseURL(ts.URL, time.Second)
	var out map[string]any
	if err := c.DoJSON(context.Background(), http.MethodPut, "/things/1", nil, nil, &out); err != nil {
		t.Fatalf("expected empty body to be accepted, got %v", err)
	}
}
