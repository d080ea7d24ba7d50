package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobtrack-backend/internal/delivery/http/response"
	"go-jobtrack-backend/pkg/logger"
	"go-jobtrack-backend/pkg/redis"
)

// RateLimitConfig holds configuration for the per-IP limiter.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback).
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore sync.Map
	cleanupOnce    sync.Once
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// DefaultRateLimitConfig returns sensible defaults for API rate limiting.
func DefaultRateLimitConfig(limit, windowSeconds int) RateLimitConfig {
	if limit < 1 {
		limit = 100
	}
	if windowSeconds < 1 {
		windowSeconds = 60
	}
	return RateLimitConfig{
		Limit:     limit,
		Window:    time.Duration(windowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
	}
}

// RateLimit limits requests per client IP, backed by Redis when available
// and an in-process counter otherwise. Fails open on Redis errors.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		var count int
		if client := redis.Client(); client != nil {
			result, err := client.Eval(c, rateLimitLuaScript, []string{key}, int(cfg.Window.Seconds())).Int()
			if err != nil {
				logger.Log.Warn("rate limit redis error, failing open", "error", err)
				c.Next()
				return
			}
			count = result
		} else {
			count = incrInMemory(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func incrInMemory(key string, window time.Duration) int {
	value, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
	entry := value.(*rateLimitEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if time.Now().After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = time.Now().Add(window)
	}
	entry.count++
	return entry.count
}
