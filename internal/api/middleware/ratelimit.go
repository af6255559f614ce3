package middleware

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dharma-pro/temple-booking/internal/api/handler/v1/response"
	"github.com/dharma-pro/temple-booking/internal/config"
)

var errRateLimited = errors.New("rate limit exceeded")

// The bucket state lives in one hash per key so refill and take are atomic.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// RateLimit is a redis token bucket. Redis failures let the request through.
func RateLimit(conf *config.RateLimitConfig, rdb *redis.Client) gin.HandlerFunc {
	if !conf.Enabled || rdb == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}

	return func(ctx *gin.Context) {
		key := rateKey(conf, ctx)

		vals, err := tokenBucket.Run(ctx.Request.Context(), rdb, []string{key},
			time.Now().UnixMilli(),
			conf.Capacity,
			conf.RefillTokens,
			conf.RefillInterval.Milliseconds(),
			int64(conf.TTL/time.Second),
		).Int64Slice()
		if err != nil || len(vals) != 3 {
			zap.L().Warn("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(conf.Capacity))
		ctx.Header("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))

		if vals[0] != 1 {
			secs := int(math.Ceil(float64(vals[2]) / 1000))
			ctx.Header("Retry-After", strconv.Itoa(secs))
			response.RenderErr(ctx, response.ErrTooManyRequests(fmt.Errorf("%w, retry in %ds", errRateLimited, secs)))
			return
		}

		ctx.Next()
	}
}

func rateKey(conf *config.RateLimitConfig, ctx *gin.Context) string {
	ip := ctx.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	route := ctx.Request.Method + " " + ctx.FullPath()

	parts := []string{conf.Prefix}
	switch strings.ToLower(conf.KeyStrategy) {
	case "ip":
		parts = append(parts, "ip", ip)
	case "route":
		parts = append(parts, "route", route)
	default:
		parts = append(parts, "ip", ip, "route", route)
	}

	return strings.Join(parts, ":")
}
