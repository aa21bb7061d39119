// @title Crime Journal Backend API
// @version 1.0
// @description Profiles and the crime journal entries they own
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	_ "CRIME_JOURNAL_BACK-END/docs" // This is required for swagger
	"CRIME_JOURNAL_BACK-END/internal/config"
	"CRIME_JOURNAL_BACK-END/internal/database"
	"CRIME_JOURNAL_BACK-END/internal/handlers"
	"CRIME_JOURNAL_BACK-END/internal/middleware"
	"CRIME_JOURNAL_BACK-END/internal/repository"
	"CRIME_JOURNAL_BACK-END/internal/routes"
	"CRIME_JOURNAL_BACK-END/internal/services"
	"CRIME_JOURNAL_BACK-END/internal/validation"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "crimejournal",
		Short:        "Crime journal backend",
		Long:         "HTTP API over Postgres for user profiles and the crime journal entries they own.",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), false)
		},
	}
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the state of every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), true)
		},
	})

	root.AddCommand(serveCmd, migrateCmd)
	return root
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg.Log, os.Stdout)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

func runMigrate(ctx context.Context, statusOnly bool) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if statusOnly {
		return database.MigrationStatus(ctx, db.SQL)
	}
	if err := database.Migrate(ctx, db.SQL); err != nil {
		return err
	}
	logger.Info().Msg("migrations applied")
	return nil
}

func runServe(ctx context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("db", cfg.Database.Name).
		Msg("connecting to database")
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.SQL); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
	}

	// --- HTTP Handlers ---
	v := validation.New()
	profileRepo := repository.NewProfileRepository(db.SQL)
	journalRepo := repository.NewCrimeJournalRepository(db.SQL)

	h := routes.Handlers{
		Profile: handlers.NewProfileHandler(services.NewProfileService(profileRepo), v),
		Journal: handlers.NewCrimeJournalHandler(services.NewCrimeJournalService(journalRepo, profileRepo), v),
		Health:  handlers.NewHealthHandler(db),
	}
	opts := routes.Options{
		Logger:  logger,
		Swagger: cfg.SwaggerEnabled,
	}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts.Metrics = middleware.NewMetrics(reg)
		opts.Gatherer = reg
		opts.MetricsPath = cfg.Metrics.Path
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           c.Handler(routes.SetupRoutes(h, opts)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
