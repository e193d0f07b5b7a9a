package middleware

import (
	"bytes"
	"log"
	"net/http"

	"yatube/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves the wrapped handler from the page cache when a
// fresh entry exists and stores successful renders otherwise. The key
// is the full request identity: path plus raw query, page number
// included. Cache trouble degrades to a plain render.
func CachePage(repo *redis.PageCacheRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			key += "?" + c.Request.URL.RawQuery
		}

		ctx := c.Request.Context()
		if page, ok, err := repo.Get(ctx, key); err != nil {
			log.Printf("page cache get %q: %v", key, err)
		} else if ok {
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		if cw.Status() != http.StatusOK {
			return
		}
		stored := &redis.CachedPage{
			Status:      cw.Status(),
			ContentType: cw.Header().Get("Content-Type"),
			Body:        cw.body.Bytes(),
		}
		if err := repo.Set(ctx, key, stored); err != nil {
			log.Printf("page cache set %q: %v", key, err)
		}
	}
}
