package api

import (
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/killallgit/readwise-api/api/types"
	apperrors "github.com/killallgit/readwise-api/pkg/errors"
)

const (
	defaultRequestLimit = 1 << 20
	limiterIdleTimeout  = 10 * time.Minute
	limiterSweepPeriod  = 5 * time.Minute
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORS allows cross-origin requests from origins. An empty list or "*"
// allows any origin.
func CORS(origins ...string) gin.HandlerFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Header("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestSizeLimit caps request bodies at 1MB
func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(defaultRequestLimit)
}

// RequestSizeLimitWithSize caps request bodies at maxBytes. Requests that
// declare a larger body are rejected up front; others are cut off while read.
func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			if c.Request.ContentLength > maxBytes {
				types.SendAppError(c, apperrors.New(apperrors.ErrCodeFileTooLarge, "Request body too large").
					WithDetail("max_bytes", maxBytes))
				c.Abort()
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// PerClientRateLimit limits each client IP to rps requests per second with
// the given burst. Limiters idle for ten minutes are dropped.
func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		value, ok := rateLimiters.Load(clientIP)
		if !ok {
			fresh := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			fresh.touch(now)
			value, _ = rateLimiters.LoadOrStore(clientIP, fresh)
		}

		cl := value.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
				Error:   "RATE_LIMITED",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(limiterSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removeIdleLimiters(rateLimiters, time.Now())
		case <-cleanupStop:
			return
		}
	}
}

func removeIdleLimiters(rateLimiters *sync.Map, now time.Time) {
	rateLimiters.Range(func(key, value interface{}) bool {
		cl, ok := value.(*clientLimiter)
		if !ok || cl.idleSince(now) > limiterIdleTimeout {
			rateLimiters.Delete(key)
		}
		return true
	})
}

// RequestLogger logs each request through zerolog
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size()).
			Msg("request")
	}
}
