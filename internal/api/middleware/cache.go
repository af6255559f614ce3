package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/config"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if !w.overflow {
		if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
			w.overflow = true
			w.buf.Reset()
		} else {
			w.buf.Write(b)
		}
	}

	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Cache serves GET responses from redis for conf.TTL. Only complete 200
// responses within MaxBodyBytes are stored.
func Cache(conf *config.CacheConfig, rdb *redis.Client) gin.HandlerFunc {
	if !conf.Enabled || rdb == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}

	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := cacheKey(conf.Prefix, ctx.Request)

		if raw, err := rdb.Get(ctx.Request.Context(), key).Bytes(); err == nil {
			var cached cachedResponse
			if err = json.Unmarshal(raw, &cached); err == nil {
				ctx.Header("X-Cache", "HIT")
				ctx.Data(cached.Status, cached.ContentType, cached.Body)
				ctx.Abort()
				return
			}
		}

		w := &captureWriter{ResponseWriter: ctx.Writer, limit: conf.MaxBodyBytes}
		ctx.Writer = w
		ctx.Header("X-Cache", "MISS")

		ctx.Next()

		if w.Status() != http.StatusOK || w.overflow {
			return
		}

		payload, err := json.Marshal(cachedResponse{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.buf.Bytes(),
		})
		if err != nil {
			return
		}

		if err = rdb.Set(context.Background(), key, payload, conf.TTL).Err(); err != nil {
			zap.L().Warn("response not cached", zap.String("key", key), zap.Error(err))
		}
	}
}

func cacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// InvalidateCache drops cached responses under prefix after a successful write.
func InvalidateCache(conf *config.CacheConfig, rdb *redis.Client) gin.HandlerFunc {
	if !conf.Enabled || rdb == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}

	return func(ctx *gin.Context) {
		ctx.Next()

		if ctx.Writer.Status() >= http.StatusBadRequest {
			return
		}

		bg, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		iter := rdb.Scan(bg, 0, conf.Prefix+":*", 100).Iterator()
		for iter.Next(bg) {
			rdb.Del(bg, iter.Val())
		}
		if err := iter.Err(); err != nil {
			zap.L().Warn("cache invalidation failed", zap.Error(err))
		}
	}
}
