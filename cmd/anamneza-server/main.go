package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/anamneza/anamneza/internal/catalog"
	"github.com/anamneza/anamneza/internal/config"
	"github.com/anamneza/anamneza/internal/domain/session"
	"github.com/anamneza/anamneza/internal/platform/auth"
	"github.com/anamneza/anamneza/internal/platform/middleware"
	"github.com/anamneza/anamneza/internal/platform/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "anamneza-server",
		Short: "Clinical history and status note service",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(renderCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the questionnaire API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// renderCmd compiles a report from a session snapshot JSON file, without
// running the server. Reads stdin when no file is given.
func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [snapshot.json]",
		Short: "Compile a clinical note from a session snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			text, err := renderSnapshot(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func renderSnapshot(r io.Reader) (string, error) {
	var sess session.Session
	if err := json.NewDecoder(r).Decode(&sess); err != nil {
		return "", fmt.Errorf("decode snapshot: %w", err)
	}
	if !sess.Sex.Valid() {
		sess.Sex = catalog.SexFemale
	}
	return report.NewGenerator().Generate(&sess), nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Auth middleware
	switch cfg.ResolvedAuthMode() {
	case "development":
		e.Use(auth.DevAuthMiddleware())
	default:
		e.Use(auth.TokenMiddleware([]byte(cfg.AuthSigningKey), auth.HealthSkipper))
	}

	// Wiring
	repo := session.NewMemoryRepository()
	svc := session.NewService(repo, report.NewGenerator())

	apiV1 := e.Group("/api/v1")
	session.NewHandler(svc).RegisterRoutes(apiV1)
	catalog.NewHandler().RegisterRoutes(apiV1)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Session TTL janitor
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				if n := repo.DeleteExpired(janitorCtx, time.Now().UTC().Add(-ttl)); n > 0 {
					logger.Info().Int("count", n).Msg("expired sessions removed")
				}
			}
		}
	}()

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
