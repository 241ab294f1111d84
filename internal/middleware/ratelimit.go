package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/autoservice-booking/internal/httpresp"
	"github.com/BruksfildServices01/autoservice-booking/internal/slogx"
)

const MsgTooManyRequests = "Demasiadas solicitudes. Intenta de nuevo más tarde."

type RateLimitConfig struct {
	// RequestsPerWindow is also the burst size
	RequestsPerWindow int
	Window            time.Duration
}

// KeyFunc groups requests that share one bucket.
type KeyFunc func(c *gin.Context) string

func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

type rateLimiter struct {
	limiters    sync.Map // map[string]*rate.Limiter
	rate        rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	actual, _ := rl.limiters.LoadOrStore(key, limiter)

	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle limiters (full bucket) at most every five minutes.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimit is a process-local token bucket per key. Counters are lost on
// restart and not shared between replicas.
func RateLimit(cfg RateLimitConfig, key KeyFunc) gin.HandlerFunc {
	if cfg.RequestsPerWindow <= 0 || cfg.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rl := &rateLimiter{
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:       cfg.RequestsPerWindow,
		lastCleanup: time.Now(),
	}

	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			c.Next()
			return
		}

		limiter := rl.getLimiter(k)
		if limiter.Allow() {
			c.Next()
			return
		}

		reservation := limiter.Reserve()
		delay := reservation.Delay()
		reservation.Cancel()

		retryAfter := max(int(delay.Seconds()), 1)

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
		c.Header("X-RateLimit-Window", cfg.Window.String())

		slogx.FromContext(c.Request.Context()).Warn("rate limit exceeded",
			"key", k,
			"endpoint", c.FullPath(),
			"retry_after", retryAfter,
		)

		c.AbortWithStatusJSON(http.StatusTooManyRequests, httpresp.Envelope{
			Success: false,
			Message: MsgTooManyRequests,
		})
	}
}
