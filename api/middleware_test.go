package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{
			name:           "preflight request",
			method:         http.MethodOptions,
			origin:         "https://example.com",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "*",
		},
		{
			name:           "regular GET request",
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			name:           "listed origin is echoed",
			origins:        []string{"https://reader.example"},
			method:         http.MethodGet,
			origin:         "https://reader.example",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://reader.example",
		},
		{
			name:           "unlisted origin gets no header",
			origins:        []string{"https://reader.example"},
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusOK,
			expectedOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins...))
			router.Any("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestSizeLimitWithSize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	customLimit := int64(512 * 1024)

	tests := []struct {
		name           string
		bodySize       int
		chunked        bool
		expectedStatus int
	}{
		{name: "request under limit", bodySize: 256 * 1024, expectedStatus: http.StatusOK},
		{name: "request at limit", bodySize: 512 * 1024, expectedStatus: http.StatusOK},
		{name: "declared length over limit", bodySize: 1024 * 1024, expectedStatus: http.StatusRequestEntityTooLarge},
		{name: "undeclared length over limit", bodySize: 1024 * 1024, chunked: true, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimitWithSize(customLimit))
			router.POST("/test", func(c *gin.Context) {
				if _, err := io.ReadAll(c.Request.Body); err != nil {
					c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
					return
				}
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			body := strings.Repeat("a", tt.bodySize)
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
			if tt.chunked {
				req.ContentLength = -1
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		requestCount      int
		requestsPerSecond int
		burstSize         int
		expectSomeBlocked bool
	}{
		{name: "requests under rate limit", requestCount: 3, requestsPerSecond: 10, burstSize: 5},
		{name: "burst requests", requestCount: 6, requestsPerSecond: 2, burstSize: 3, expectSomeBlocked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rateLimiters := &sync.Map{}
			cleanupStop := make(chan struct{})
			defer close(cleanupStop)

			router := gin.New()
			router.Use(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, tt.requestsPerSecond, tt.burstSize))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			successCount, blockedCount := 0, 0
			for i := 0; i < tt.requestCount; i++ {
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.RemoteAddr = "127.0.0.1:12345"
				router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
				}
			}

			if tt.expectSomeBlocked {
				assert.Greater(t, blockedCount, 0, "Expected some requests to be blocked")
			} else {
				assert.Equal(t, 0, blockedCount, "Expected no requests to be blocked")
				assert.Equal(t, tt.requestCount, successCount)
			}
		})
	}
}

func TestPerClientRateLimit_DifferentClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	defer close(cleanupStop)

	router := gin.New()
	router.Use(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 2, 2))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveIdleLimiters(t *testing.T) {
	rateLimiters := &sync.Map{}
	now := time.Now()

	idle := &clientLimiter{limiter: rate.NewLimiter(1, 1)}
	idle.touch(now.Add(-time.Hour))
	active := &clientLimiter{limiter: rate.NewLimiter(1, 1)}
	active.touch(now)

	rateLimiters.Store("idle", idle)
	rateLimiters.Store("active", active)
	rateLimiters.Store("junk", "not a limiter")

	removeIdleLimiters(rateLimiters, now)

	_, ok := rateLimiters.Load("idle")
	assert.False(t, ok)
	_, ok = rateLimiters.Load("junk")
	assert.False(t, ok)
	_, ok = rateLimiters.Load("active")
	assert.True(t, ok)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing?q=cat", nil))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"path":"/missing?q=cat"`)
}
