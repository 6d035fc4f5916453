package cache

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Versioned cache bucket names. The version suffix is bumped on deploy
// to force-evict stale buckets during activation.
const (
	PageBucket   = "dapsiwow-v1"
	StaticBucket = "dapsiwow-static-v1"
	APIBucket    = "dapsiwow-api-v1"
)

// KnownBuckets returns the current bucket set. Activation deletes
// every bucket not in this list.
func KnownBuckets() []string {
	return []string{PageBucket, StaticBucket, APIBucket}
}

// Entry is one cached response.
type Entry struct {
	Status   int         `json:"status"`
	Header   http.Header `json:"header"`
	Body     []byte      `json:"body"`
	StoredAt time.Time   `json:"storedAt"`
}

// Response materializes the entry as an *http.Response for req.
func (e Entry) Response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status)),
		StatusCode:    e.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        e.Header.Clone(),
		Body:          newBodyReader(e.Body),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// BucketStore persists cache entries in named, independently evictable
// Bolt buckets keyed by request URI.
type BucketStore struct {
	db  *bolt.DB
	log *zap.Logger
}

// OpenBucketStore opens (or creates) the cache database at path.
func OpenBucketStore(path string, log *zap.Logger) (*BucketStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}
	return &BucketStore{db: db, log: log}, nil
}

// Close closes the underlying database.
func (bs *BucketStore) Close() error {
	return bs.db.Close()
}

// Put stores an entry under bucket/key, creating the bucket on demand.
// Concurrent puts for the same key resolve as last write wins.
func (bs *BucketStore) Put(bucket, key string, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}
	return bs.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// Get retrieves the entry stored under bucket/key.
func (bs *BucketStore) Get(bucket, key string) (Entry, bool) {
	var e Entry
	found := false
	err := bs.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(key))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &e); err != nil {
			// A corrupt entry behaves like a miss.
			bs.log.Warn("corrupt cache entry",
				zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
			return nil
		}
		found = true
		return nil
	})
	if err != nil {
		bs.log.Warn("cache read failed",
			zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return Entry{}, false
	}
	return e, found
}

// Buckets lists the bucket names currently present.
func (bs *BucketStore) Buckets() ([]string, error) {
	var names []string
	err := bs.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	return names, err
}

// DeleteStale removes every bucket whose name is not in known and
// returns the names it deleted.
func (bs *BucketStore) DeleteStale(known []string) ([]string, error) {
	keep := make(map[string]bool, len(known))
	for _, name := range known {
		keep[name] = true
	}

	var deleted []string
	err := bs.db.Update(func(tx *bolt.Tx) error {
		var stale [][]byte
		if err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if !keep[string(name)] {
				stale = append(stale, append([]byte(nil), name...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, name := range stale {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}
			deleted = append(deleted, string(name))
		}
		return nil
	})
	return deleted, err
}
