package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/readwise-api/api/types"
	"github.com/killallgit/readwise-api/internal/database"
)

// Options tunes the HTTP server and its middleware
type Options struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderBytes int
	MaxBodyBytes   int64
	CORSEnabled    bool
	CORSOrigins    []string
	RateLimit      RateLimitOptions
}

// RateLimitOptions configures per-client rate limiting of /api/v1
type RateLimitOptions struct {
	Enabled bool
	RPS     int
	Burst   int
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		MaxBodyBytes:   defaultRequestLimit,
		CORSEnabled:    true,
		RateLimit:      RateLimitOptions{Enabled: true, RPS: 10, Burst: 20},
	}
}

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	db                 *database.DB
	options            Options
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, opts ...Options) *Server {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	server := &Server{
		engine:       engine,
		options:      options,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    options.ReadTimeout,
			WriteTimeout:   options.WriteTimeout,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: options.MaxHeaderBytes,
		},
	}

	return server
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	s.db = db
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
	if deps != nil && deps.DB != nil {
		s.db = deps.DB
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestLogger())

	if s.options.CORSEnabled {
		s.engine.Use(CORS(s.options.CORSOrigins...))
	}

	maxBody := s.options.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultRequestLimit
	}
	s.engine.Use(RequestSizeLimitWithSize(maxBody))
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	var limiter gin.HandlerFunc
	if rl := s.options.RateLimit; rl.Enabled && rl.RPS > 0 {
		limiter = PerClientRateLimit(s.rateLimiters, s.cleanupStop, &s.cleanupInitialized, rl.RPS, rl.Burst)
	}
	return RegisterRoutes(s.engine, s.dependencies, limiter)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Stop the rate limiter cleanup goroutine
	s.stopOnce.Do(func() { close(s.cleanupStop) })

	return s.httpServer.Shutdown(ctx)
}
