package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/readwise-api/api"
	"github.com/killallgit/readwise-api/api/types"
	"github.com/killallgit/readwise-api/internal/database"
	"github.com/killallgit/readwise-api/internal/models"
	"github.com/killallgit/readwise-api/internal/services/cache"
	"github.com/killallgit/readwise-api/internal/services/cleanup"
	"github.com/killallgit/readwise-api/internal/services/documents"
	"github.com/killallgit/readwise-api/internal/services/highlights"
	"github.com/killallgit/readwise-api/internal/services/rendering"
	"github.com/killallgit/readwise-api/internal/services/selection"
	"github.com/killallgit/readwise-api/pkg/config"
	"github.com/killallgit/readwise-api/pkg/render"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Readwise Highlights API server with the configured settings.

Reading sessions are kept in an in-memory database by default. Point
database.path at a file, or switch database.driver to postgres, to keep
documents and highlights across restarts.

Example:
  readwise-api serve
  readwise-api serve --port 9090
  readwise-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

// application holds everything a running server owns
type application struct {
	db      *database.DB
	cache   *cache.MemoryCache
	sweeper *cleanup.Service
	server  *api.Server
}

// newApplication opens storage and wires the services behind the HTTP server
func newApplication(cfg *config.Config, address string) (*application, error) {
	db, err := database.Open(database.Options{
		Driver:  cfg.Database.Driver,
		Path:    cfg.Database.Path,
		DSN:     cfg.Database.DSN,
		Verbose: cfg.Database.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	mode, ok := render.ParseMode(cfg.Render.Mode)
	if !ok {
		_ = db.Close()
		return nil, fmt.Errorf("invalid render mode: %q", cfg.Render.Mode)
	}

	tracker := selection.NewTracker()
	documentService := documents.NewService(
		documents.NewRepository(db.DB),
		documents.WithMaxUploadBytes(cfg.Documents.MaxUploadBytes),
		documents.WithMaxTextRunes(cfg.Documents.MaxTextRunes),
		documents.WithSelectionTracker(tracker),
	)
	highlightService := highlights.NewService(highlights.NewRepository(db.DB), documentService, tracker)
	selectionService := selection.NewService(documentService, tracker)

	renderCache := cache.NewMemoryCache(cfg.Cache.MaxSizeMB)
	renderService := rendering.NewService(documentService, highlightService,
		rendering.WithCache(renderCache, cfg.Render.CacheTTL))

	server := api.NewServer(address, api.Options{
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		MaxBodyBytes:   cfg.Documents.MaxUploadBytes + 64<<10,
		CORSEnabled:    cfg.Security.EnableCORS,
		CORSOrigins:    cfg.Security.CORSOrigins,
		RateLimit: api.RateLimitOptions{
			Enabled: cfg.RateLimiting.Enabled,
			RPS:     cfg.RateLimiting.RPS,
			Burst:   cfg.RateLimiting.Burst,
		},
	})
	server.SetDependencies(&types.Dependencies{
		DB:                db,
		DocumentService:   documentService,
		HighlightService:  highlightService,
		SelectionService:  selectionService,
		RenderService:     renderService,
		CacheStats:        renderCache,
		DefaultRenderMode: mode,
		MaxUploadBytes:    cfg.Documents.MaxUploadBytes,
	})
	if err := server.Initialize(); err != nil {
		renderCache.Stop()
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}

	return &application{
		db:      db,
		cache:   renderCache,
		sweeper: cleanup.NewService(documentService, cfg.Sessions.TTL, cfg.Sessions.SweepSchedule),
		server:  server,
	}, nil
}

// close releases background workers and storage
func (a *application) close() {
	a.sweeper.Stop()
	a.cache.Stop()
	if err := a.db.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Configuration may change the log level or format
	if err := setupLogging(cmd, args); err != nil {
		return err
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}
	address := fmt.Sprintf("%s:%d", serverHost, serverPort)

	app, err := newApplication(cfg, address)
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.sweeper.Start(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := app.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
		close(serverErr)
	}()

	log.Info().
		Str("address", address).
		Str("database", cfg.Database.Driver).
		Str("render_mode", cfg.Render.Mode).
		Msg("Readwise Highlights API server started")

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server...")
	case err := <-serverErr:
		runErr = err
		if err != nil {
			log.Error().Err(err).Msg("Shutting down server...")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return runErr
}
