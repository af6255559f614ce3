package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharma-pro/temple-booking/internal/api/middleware"
	"github.com/dharma-pro/temple-booking/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func rateLimitConfig() *config.RateLimitConfig {
	return &config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            time.Minute,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func do(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)

	return w
}

func TestRateLimit(t *testing.T) {
	_, rdb := newRedis(t)

	router := gin.New()
	router.Use(middleware.RateLimit(rateLimitConfig(), rdb))
	router.GET("/temples/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	router.GET("/slots/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := do(router, http.MethodGet, "/temples/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = do(router, http.MethodGet, "/temples/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = do(router, http.MethodGet, "/temples/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// Buckets are per route.
	w = do(router, http.MethodGet, "/slots/")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	mr, rdb := newRedis(t)
	mr.Close()

	router := gin.New()
	router.Use(middleware.RateLimit(rateLimitConfig(), rdb))
	router.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/").Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	conf := rateLimitConfig()
	conf.Capacity = 0

	router := gin.New()
	router.Use(middleware.RateLimit(conf, nil))
	router.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := do(router, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
