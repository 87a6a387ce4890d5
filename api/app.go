package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/alerts"
	"github.com/rogerio-castellano/products-msv/internal/config"
	"github.com/rogerio-castellano/products-msv/internal/db"
	"github.com/rogerio-castellano/products-msv/internal/inventory"
	"github.com/rogerio-castellano/products-msv/internal/monitor"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

// application holds the long-lived dependencies shared by the commands.
type application struct {
	cfg    config.Config
	logger *zap.Logger

	database *sql.DB
	rdb      *redis.Client

	products  *repo.SQLProductRepository
	movements *repo.SQLMovementRepository
	summary   *repo.SQLSummaryRepository
	inventory *inventory.Service
}

func newApplication(ctx context.Context, cfg config.Config, logger *zap.Logger) (*application, error) {
	database, err := db.Connect(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx, database, cfg.DBDriver); err != nil {
		database.Close()
		return nil, err
	}

	app := &application{
		cfg:       cfg,
		logger:    logger,
		database:  database,
		products:  repo.NewSQLProductRepository(database),
		movements: repo.NewSQLMovementRepository(database),
		summary:   repo.NewSQLSummaryRepository(database),
	}
	app.inventory = inventory.NewService(app.products, logger.Named("inventory"))

	if cfg.RedisAddr != "" {
		app.rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := app.rdb.Ping(ctx).Err(); err != nil {
			app.close()
			return nil, fmt.Errorf("could not connect to Redis: %w", err)
		}
	}

	logger.Info("✅ database ready",
		zap.String("driver", cfg.DBDriver),
		zap.Bool("testing", cfg.Testing))
	return app, nil
}

func (a *application) monitorOptions() []monitor.Option {
	opts := []monitor.Option{
		monitor.WithInterval(a.cfg.MonitorInterval),
		monitor.WithThreshold(a.cfg.MonitorThreshold),
	}
	if a.rdb != nil {
		opts = append(opts, monitor.WithReporter(alerts.NewRedisPublisher(a.rdb, a.cfg.RedisKey, 10*a.cfg.MonitorInterval)))
	}
	return opts
}

// close releases every resource. In test mode the schema is dropped first.
func (a *application) close() {
	if a.cfg.Testing {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.DropSchema(ctx, a.database); err != nil {
			a.logger.Error("failed to drop schema", zap.Error(err))
		}
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("failed to close Redis client", zap.Error(err))
		}
	}

	if err := a.database.Close(); err != nil {
		a.logger.Error("failed to close database", zap.Error(err))
	}
}
