// Package monitor polls the product store for low-stock items in the background.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/products-msv/internal/metrics"
	"github.com/rogerio-castellano/products-msv/internal/models"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultThreshold = 10
)

// LowStockLister is the read-only slice of the product store the monitor needs.
type LowStockLister interface {
	ListLowStock(ctx context.Context, threshold int) ([]models.Product, error)
}

// Reporter receives the result of every poll that found low-stock products.
type Reporter interface {
	ReportLowStock(ctx context.Context, products []models.Product) error
}

type Monitor struct {
	store     LowStockLister
	logger    *zap.Logger
	interval  time.Duration
	threshold int
	reporters []Reporter
}

type Option func(*Monitor)

func WithInterval(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.interval = d
		}
	}
}

func WithThreshold(n int) Option {
	return func(m *Monitor) {
		if n > 0 {
			m.threshold = n
		}
	}
}

func WithReporter(r Reporter) Option {
	return func(m *Monitor) {
		if r != nil {
			m.reporters = append(m.reporters, r)
		}
	}
}

func New(store LowStockLister, logger *zap.Logger, opts ...Option) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		store:     store,
		logger:    logger,
		interval:  DefaultInterval,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle controls a running monitor loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to return. It is safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start runs the polling loop in its own goroutine until ctx is cancelled or
// Stop is called. The first poll happens immediately.
func (m *Monitor) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		m.run(ctx)
	}()

	return h
}

func (m *Monitor) run(ctx context.Context) {
	m.logger.Info("stock monitor started",
		zap.Duration("interval", m.interval),
		zap.Int("threshold", m.threshold))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.safeTick(ctx)

		select {
		case <-ctx.Done():
			m.logger.Info("stock monitor stopped")
			return
		case <-ticker.C:
		}
	}
}

// safeTick runs one poll; errors and panics are logged and swallowed so the
// loop keeps going.
func (m *Monitor) safeTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			metrics.MonitorTickFailures.Inc()
			m.logger.Error("stock monitor tick panicked", zap.Any("panic", r))
		}
	}()

	if _, err := m.Tick(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		metrics.MonitorTickFailures.Inc()
		m.logger.Error("stock monitor tick failed", zap.Error(err))
	}
}

// Tick performs a single poll and returns the low-stock products it found.
func (m *Monitor) Tick(ctx context.Context) ([]models.Product, error) {
	products, err := m.store.ListLowStock(ctx, m.threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	metrics.LowStockProducts.Set(float64(len(products)))
	if len(products) == 0 {
		return products, nil
	}

	m.logger.Warn(fmt.Sprintf("%d product stocks are depleting", len(products)),
		zap.Int("count", len(products)),
		zap.Int("threshold", m.threshold))
	for _, p := range products {
		m.logger.Warn("low stock", zap.String("sku", p.SKU), zap.Int("stock", p.Stock))
	}

	for _, r := range m.reporters {
		if err := r.ReportLowStock(ctx, products); err != nil {
			m.logger.Error("failed to report low stock", zap.Error(err))
		}
	}

	return products, nil
}
