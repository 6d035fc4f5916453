package cache

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// fakeTransport serves scripted responses and records which paths hit
// the network. A nil handler entry means the network is unreachable.
type fakeTransport struct {
	responses map[string]string
	down      bool
	requests  []string
}

var errNetworkDown = errors.New("network unreachable")

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req.URL.RequestURI())
	if f.down {
		return nil, errNetworkDown
	}
	body, ok := f.responses[req.URL.Path]
	if !ok {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("not found")),
			Request:    req,
		}, nil
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newTestController(t *testing.T, transport http.RoundTripper) (*Controller, *BucketStore) {
	t.Helper()
	bs, err := OpenBucketStore(filepath.Join(t.TempDir(), "cache.db"), nil)
	if err != nil {
		t.Fatalf("failed to open bucket store: %v", err)
	}
	t.Cleanup(func() { bs.Close() })
	return NewController(bs, transport, nil), bs
}

func doGet(t *testing.T, c *Controller, url string, header http.Header) (*http.Response, string, error) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	for k, vs := range header {
		req.Header[k] = vs
	}
	resp, err := c.RoundTrip(req)
	if err != nil {
		return nil, "", err
	}
	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		t.Fatalf("failed to read body: %v", readErr)
	}
	return resp, string(body), nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		method string
		path   string
		accept string
		want   strategy
	}{
		{"POST", "/api/auth/login", "", passThrough},
		{"GET", "/api/leaderboard/global", "", apiNetworkFirst},
		{"GET", "/assets/app.js", "", staticCacheFirst},
		{"GET", "/assets/logo.PNG", "", staticCacheFirst},
		{"GET", "/fonts/inter.woff2", "", staticCacheFirst},
		{"GET", "/games/sudoku-solver", "text/html,application/xhtml+xml", pageNetworkFirst},
		{"GET", "/metrics.json", "application/json", passThrough},
	}

	for _, tt := range tests {
		req, err := http.NewRequest(tt.method, "http://hub.local"+tt.path, nil)
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		if tt.accept != "" {
			req.Header.Set("Accept", tt.accept)
		}
		if got := classify(req); got != tt.want {
			t.Errorf("classify(%s %s) = %d, want %d", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestAPINetworkFirstCachesAndFallsBack(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"/api/games": `[{"id":"sudoku-solver"}]`,
	}}
	c, _ := newTestController(t, transport)

	resp, body, err := doGet(t, c, "http://hub.local/api/games", nil)
	if err != nil {
		t.Fatalf("online fetch failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body != `[{"id":"sudoku-solver"}]` {
		t.Fatalf("unexpected online response %d %q", resp.StatusCode, body)
	}

	// Network goes away; the cached copy serves.
	transport.down = true
	resp, body, err = doGet(t, c, "http://hub.local/api/games", nil)
	if err != nil {
		t.Fatalf("offline fetch failed: %v", err)
	}
	if body != `[{"id":"sudoku-solver"}]` {
		t.Errorf("offline body = %q, want cached copy", body)
	}

	// An uncached API path offline surfaces the network error.
	if _, _, err := doGet(t, c, "http://hub.local/api/leaderboard/global", nil); err == nil {
		t.Error("uncached path offline should fail")
	}
}

func TestAPIErrorResponsesNotCached(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{}}
	c, bs := newTestController(t, transport)

	// 404 passes through to the caller but never enters the cache.
	resp, _, err := doGet(t, c, "http://hub.local/api/missing", nil)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if _, ok := bs.Get(APIBucket, "/api/missing"); ok {
		t.Error("non-200 response was cached")
	}
}

func TestStaticCacheFirst(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"/assets/app.js": "console.log('hi')",
	}}
	c, _ := newTestController(t, transport)

	if _, _, err := doGet(t, c, "http://hub.local/assets/app.js", nil); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if len(transport.requests) != 1 {
		t.Fatalf("expected 1 network request, got %d", len(transport.requests))
	}

	// A cache hit must not touch the network at all.
	_, body, err := doGet(t, c, "http://hub.local/assets/app.js", nil)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if body != "console.log('hi')" {
		t.Errorf("cached body = %q", body)
	}
	if len(transport.requests) != 1 {
		t.Errorf("cache hit went to the network, %d requests", len(transport.requests))
	}
}

func TestPageFallsBackToCachedRoot(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"/": "<html>offline shell</html>",
	}}
	c, _ := newTestController(t, transport)

	htmlHeader := http.Header{"Accept": []string{"text/html"}}

	// Visit the root while online so it lands in the page bucket.
	if _, _, err := doGet(t, c, "http://hub.local/", htmlHeader); err != nil {
		t.Fatalf("root fetch failed: %v", err)
	}

	// A never-visited page offline falls back to the cached root.
	transport.down = true
	resp, body, err := doGet(t, c, "http://hub.local/games/sudoku-solver", htmlHeader)
	if err != nil {
		t.Fatalf("offline navigation failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body != "<html>offline shell</html>" {
		t.Errorf("expected offline shell, got %d %q", resp.StatusCode, body)
	}
}

func TestPageRootFallbackFromStaticBucket(t *testing.T) {
	transport := &fakeTransport{down: true}
	c, bs := newTestController(t, transport)

	// Install puts the root document in the static bucket.
	if err := bs.Put(StaticBucket, "/", Entry{
		Status: http.StatusOK,
		Header: http.Header{},
		Body:   []byte("<html>precached shell</html>"),
	}); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	_, body, err := doGet(t, c, "http://hub.local/games/memory-palace",
		http.Header{"Accept": []string{"text/html"}})
	if err != nil {
		t.Fatalf("offline navigation failed: %v", err)
	}
	if body != "<html>precached shell</html>" {
		t.Errorf("expected precached shell, got %q", body)
	}
}

func TestPassThroughNeverCached(t *testing.T) {
	transport := &fakeTransport{responses: map[string]string{
		"/api/auth/login": `{"token":"x"}`,
	}}
	c, bs := newTestController(t, transport)

	req, err := http.NewRequest(http.MethodPost, "http://hub.local/api/auth/login", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	resp, err := c.RoundTrip(req)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	resp.Body.Close()

	if _, ok := bs.Get(APIBucket, "/api/auth/login"); ok {
		t.Error("POST response was cached")
	}
}

func TestInstallPrecachesManifest(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("asset:" + r.URL.Path))
	}))
	defer upstream.Close()

	c, bs := newTestController(t, http.DefaultTransport)

	if err := c.Install(context.Background(), upstream.URL); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	for _, path := range PrecacheManifest {
		entry, ok := bs.Get(StaticBucket, path)
		if !ok {
			t.Errorf("manifest path %q not cached", path)
			continue
		}
		if string(entry.Body) != "asset:"+path {
			t.Errorf("manifest path %q cached wrong body %q", path, entry.Body)
		}
	}
}

func TestInstallFailsAtomically(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer upstream.Close()

	c, _ := newTestController(t, http.DefaultTransport)

	if err := c.Install(context.Background(), upstream.URL); err == nil {
		t.Error("Install should fail when any manifest asset fails")
	}
}

func TestActivateEvictsStaleBuckets(t *testing.T) {
	c, bs := newTestController(t, &fakeTransport{})

	// Populate current buckets plus one left over from an old version.
	mustPut := func(bucket, key string) {
		t.Helper()
		if err := bs.Put(bucket, key, Entry{Status: 200, Header: http.Header{}}); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}
	mustPut(PageBucket, "/")
	mustPut(StaticBucket, "/app.js")
	mustPut("dapsiwow-v0", "/old")

	if err := c.Activate(); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	names, err := bs.Buckets()
	if err != nil {
		t.Fatalf("Buckets failed: %v", err)
	}
	for _, name := range names {
		if name == "dapsiwow-v0" {
			t.Error("stale bucket survived activation")
		}
	}
	if _, ok := bs.Get(PageBucket, "/"); !ok {
		t.Error("current bucket content lost during activation")
	}
}

func TestBucketStoreMisses(t *testing.T) {
	bs, err := OpenBucketStore(filepath.Join(t.TempDir(), "cache.db"), nil)
	if err != nil {
		t.Fatalf("failed to open bucket store: %v", err)
	}
	defer bs.Close()

	if err := bs.Put(StaticBucket, "/good", Entry{Status: 200, Header: http.Header{}}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, ok := bs.Get(StaticBucket, "/good"); !ok {
		t.Fatal("stored entry should hit")
	}
	if _, ok := bs.Get(StaticBucket, "/missing"); ok {
		t.Error("absent key should miss")
	}
	if _, ok := bs.Get("no-such-bucket", "/good"); ok {
		t.Error("absent bucket should miss")
	}
}
