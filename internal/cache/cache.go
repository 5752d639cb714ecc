// Package cache provides an in-process response cache for public article
// reads. Entries are keyed by request path and dropped whenever the
// underlying article is mutated.
package cache

import (
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type ResponseCache struct {
	memory *gocache.Cache
}

func New(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		memory: gocache.New(ttl, ttl),
	}
}

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// Middleware serves cached GET responses and records cacheable ones.
// Only 200 responses are stored.
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path
		if entry, found := c.memory.Get(key); found {
			cached := entry.(cachedResponse)
			w.Header().Set("Content-Type", cached.contentType)
			w.WriteHeader(cached.status)
			w.Write(cached.body)
			return
		}

		recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		if recorder.status == http.StatusOK {
			c.memory.SetDefault(key, cachedResponse{
				status:      recorder.status,
				contentType: recorder.Header().Get("Content-Type"),
				body:        recorder.body,
			})
		}
	})
}

// InvalidateArticle drops the cached read for one article. Called after a
// successful edit or delete, before the mutation response is written.
func (c *ResponseCache) InvalidateArticle(articleID uint) {
	c.memory.Delete(articleKey(articleID))
}

func (c *ResponseCache) Flush() {
	c.memory.Flush()
}

func articleKey(articleID uint) string {
	return fmt.Sprintf("/article/%d", articleID)
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body = append(r.body, b...)
	return r.ResponseWriter.Write(b)
}
