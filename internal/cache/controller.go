/*
Package cache implements the offline cache layer: an http.RoundTripper
that intercepts outgoing GET requests and applies one of three caching
strategies depending on request shape, backed by named Bolt buckets.

Strategies, evaluated in fixed priority order per request:

  1. non-GET methods pass through untouched
  2. /api/ paths are network-first with cache fallback
  3. static assets (scripts, styles, fonts, images) are cache-first
  4. HTML navigations are network-first with an offline fallback to the
     cached root document

A failed cache store never fails the request: the response is returned
to the caller even when caching it did not succeed.
*/
package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PrecacheManifest is the fixed set of always-needed root-relative
// paths populated into the static bucket on install.
var PrecacheManifest = []string{
	"/",
	"/site.webmanifest",
	"/robots.txt",
	"/sitemap.xml",
}

// precacheConcurrency bounds parallel fetches during Install.
const precacheConcurrency = 4

var staticExtensions = map[string]bool{
	".js":    true,
	".css":   true,
	".woff":  true,
	".woff2": true,
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".svg":   true,
	".ico":   true,
}

type strategy int

const (
	passThrough strategy = iota
	apiNetworkFirst
	staticCacheFirst
	pageNetworkFirst
)

// Controller intercepts outgoing requests and serves them from cache,
// network, or a blend of both. It implements http.RoundTripper.
type Controller struct {
	buckets *BucketStore
	base    http.RoundTripper
	log     *zap.Logger
}

// NewController wraps base with the caching strategies. A nil base uses
// http.DefaultTransport.
func NewController(buckets *BucketStore, base http.RoundTripper, log *zap.Logger) *Controller {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{buckets: buckets, base: base, log: log}
}

// RoundTrip classifies the request and applies its caching strategy.
func (c *Controller) RoundTrip(req *http.Request) (*http.Response, error) {
	switch classify(req) {
	case apiNetworkFirst:
		return c.networkFirst(req, APIBucket, false)
	case staticCacheFirst:
		return c.cacheFirst(req)
	case pageNetworkFirst:
		return c.networkFirst(req, PageBucket, true)
	default:
		return c.base.RoundTrip(req)
	}
}

// classify buckets a request into exactly one strategy, evaluated in
// fixed priority order.
func classify(req *http.Request) strategy {
	if req.Method != http.MethodGet {
		return passThrough
	}
	if strings.HasPrefix(req.URL.Path, "/api/") {
		return apiNetworkFirst
	}
	if staticExtensions[strings.ToLower(path.Ext(req.URL.Path))] {
		return staticCacheFirst
	}
	if isNavigation(req) {
		return pageNetworkFirst
	}
	return passThrough
}

// isNavigation reports whether the request fetches a full document.
func isNavigation(req *http.Request) bool {
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}

// networkFirst fetches from the network, caching successes. On network
// failure it falls back to the cached copy for the exact request; page
// navigations additionally fall back to the cached root document.
func (c *Controller) networkFirst(req *http.Request, bucket string, rootFallback bool) (*http.Response, error) {
	resp, err := c.base.RoundTrip(req)
	if err == nil {
		if resp.StatusCode == http.StatusOK {
			c.storeResponse(bucket, cacheKey(req), resp)
		}
		return resp, nil
	}

	if entry, ok := c.buckets.Get(bucket, cacheKey(req)); ok {
		return entry.Response(req), nil
	}
	if rootFallback {
		if entry, ok := c.buckets.Get(PageBucket, "/"); ok {
			return entry.Response(req), nil
		}
		if entry, ok := c.buckets.Get(StaticBucket, "/"); ok {
			return entry.Response(req), nil
		}
	}
	return nil, err
}

// cacheFirst serves from the static bucket when possible; a hit never
// touches the network. Misses fetch and cache on success.
func (c *Controller) cacheFirst(req *http.Request) (*http.Response, error) {
	key := cacheKey(req)
	if entry, ok := c.buckets.Get(StaticBucket, key); ok {
		return entry.Response(req), nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusOK {
		c.storeResponse(StaticBucket, key, resp)
	}
	return resp, nil
}

// storeResponse caches a copy of resp, replacing its body with an
// equivalent reader. Store failures are logged and swallowed so the
// response still reaches the caller.
func (c *Controller) storeResponse(bucket, key string, resp *http.Response) {
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		resp.Body = newBodyReader(nil)
		c.log.Warn("failed to read response body for caching",
			zap.String("key", key), zap.Error(err))
		return
	}
	resp.Body = newBodyReader(body)

	entry := Entry{
		Status:   resp.StatusCode,
		Header:   resp.Header.Clone(),
		Body:     body,
		StoredAt: time.Now().UTC(),
	}
	if err := c.buckets.Put(bucket, key, entry); err != nil {
		c.log.Warn("failed to cache response",
			zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
	}
}

// Install pre-populates the static bucket with the precache manifest,
// fetching from origin with bounded concurrency. Any failed asset fails
// the install, mirroring an atomic cache.addAll.
func (c *Controller) Install(ctx context.Context, origin string) error {
	origin = strings.TrimSuffix(origin, "/")
	client := &http.Client{Transport: c.base}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(precacheConcurrency)

	for _, assetPath := range PrecacheManifest {
		g.Go(func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+assetPath, nil)
			if err != nil {
				return err
			}
			resp, err := client.Do(req)
			if err != nil {
				return fmt.Errorf("precache fetch %s failed: %w", assetPath, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("precache fetch %s returned status %d", assetPath, resp.StatusCode)
			}
			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("precache read %s failed: %w", assetPath, err)
			}
			return c.buckets.Put(StaticBucket, assetPath, Entry{
				Status:   resp.StatusCode,
				Header:   resp.Header.Clone(),
				Body:     body,
				StoredAt: time.Now().UTC(),
			})
		})
	}
	return g.Wait()
}

// Activate deletes every cache bucket not in the current known set.
func (c *Controller) Activate() error {
	deleted, err := c.buckets.DeleteStale(KnownBuckets())
	if err != nil {
		return fmt.Errorf("failed to evict stale cache buckets: %w", err)
	}
	for _, name := range deleted {
		c.log.Info("evicted stale cache bucket", zap.String("bucket", name))
	}
	return nil
}

// cacheKey identifies a request inside a bucket.
func cacheKey(req *http.Request) string {
	return req.URL.RequestURI()
}

func newBodyReader(body []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(body))
}
