package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/orgsite/internal/site"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hello</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	entries := []site.SearchEntry{
		{Section: "news", Page: "news", Title: "Robot launch", Description: "We launched."},
		{Section: "projects-done", Page: "projects-done", Title: "Website", Description: "Built a robot page."},
	}
	if err := site.WriteSearchIndex(entries, filepath.Join(dir, site.SearchIndexFile)); err != nil {
		t.Fatal(err)
	}
	return New(Config{Port: 0, Dir: dir}, nil), dir
}

func TestHealthCheck(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	dir := t.TempDir()
	srv := New(Config{Port: 0, Dir: dir, AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestStaticNoCache(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/index.html", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "hello") {
		t.Errorf("body = %q", w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-cache") {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		code   int
		titles []string
	}{
		{"title before body", `{"query":"robot"}`, http.StatusOK, []string{"Robot launch", "Website"}},
		{"limit", `{"query":"robot","limit":1}`, http.StatusOK, []string{"Robot launch"}},
		{"no match", `{"query":"zebra"}`, http.StatusOK, nil},
		{"empty query", `{"query":"  "}`, http.StatusBadRequest, nil},
		{"bad json", `{`, http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/search", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, req)

			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d", w.Code, tt.code)
			}
			if tt.code != http.StatusOK {
				return
			}
			var resp searchResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Results) != len(tt.titles) {
				t.Fatalf("results = %d, want %d", len(resp.Results), len(tt.titles))
			}
			for i, want := range tt.titles {
				if resp.Results[i].Title != want {
					t.Errorf("result %d = %q, want %q", i, resp.Results[i].Title, want)
				}
			}
		})
	}
}

func TestSearchWithoutIndex(t *testing.T) {
	srv := New(Config{Dir: t.TempDir()}, nil)
	req := httptest.NewRequest("POST", "/api/search", strings.NewReader(`{"query":"x"}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestLiveReload(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/livereload"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("expected 101, got %d", resp.StatusCode)
	}

	deadline := time.Now().Add(2 * time.Second)
	for srv.Hub().Len() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	srv.Hub().Reload()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != ReloadMessage {
		t.Errorf("message = %q", msg)
	}

	srv.Hub().Close()
	if srv.Hub().Len() != 0 {
		t.Error("Close should drop every client")
	}
}

func TestWatcherDebouncesRebuilds(t *testing.T) {
	dir := t.TempDir()
	var builds, notices atomic.Int32
	w := &Watcher{
		Paths:    []string{dir},
		Debounce: 50 * time.Millisecond,
		Rebuild: func(context.Context) error {
			builds.Add(1)
			return nil
		},
		Rebuilt: func() { notices.Add(1) },
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(strings.Repeat("x", i+1)), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.Now().Add(3 * time.Second)
	for builds.Load() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no rebuild after changes")
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run: %v", err)
	}
	if got := builds.Load(); got != 1 {
		t.Errorf("rebuilds = %d, want 1 for a burst of writes", got)
	}
	if notices.Load() != builds.Load() {
		t.Errorf("notices = %d, builds = %d", notices.Load(), builds.Load())
	}
}
