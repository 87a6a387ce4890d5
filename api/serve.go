package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/products-msv/internal/auth"
	"github.com/rogerio-castellano/products-msv/internal/config"
	api "github.com/rogerio-castellano/products-msv/internal/http"
	"github.com/rogerio-castellano/products-msv/internal/http/handlers"
	rl "github.com/rogerio-castellano/products-msv/internal/http/rate_limiter"
	"github.com/rogerio-castellano/products-msv/internal/logging"
	"github.com/rogerio-castellano/products-msv/internal/monitor"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the low-stock monitor",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Testing)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.close()

	var authenticator *auth.Authenticator
	if cfg.AuthEnabled() {
		authenticator = auth.NewAuthenticator(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPasswordHash)
	}

	g, ctx := errgroup.WithContext(ctx)

	var limiter *rl.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		g.Go(func() error {
			limiter.StartVisitorCleanupLoop(ctx, time.Minute, 5*time.Minute)
			return nil
		})
	}

	router := api.NewRouter(api.RouterConfig{
		Handlers:    handlers.New(app.inventory, app.movements, app.summary, authenticator, logger.Named("http")),
		Auth:        authenticator,
		RateLimiter: limiter,
		Logger:      logger.Named("http"),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	watchdog := monitor.New(app.products, logger.Named("monitor"), app.monitorOptions()...).Start(ctx)

	g.Go(func() error {
		logger.Info("✅ server running", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		watchdog.Stop()
		return err
	})

	return g.Wait()
}
