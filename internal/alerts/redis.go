// Package alerts forwards low-stock reports to Redis.
package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/products-msv/internal/models"
)

const DefaultKey = "products:low_stock"

// LowStockReport is the payload stored under the snapshot key and published
// on the channel of the same name.
type LowStockReport struct {
	Products   []models.Product `json:"products"`
	ReportedAt time.Time        `json:"reported_at"`
}

// RedisPublisher keeps the latest low-stock snapshot in Redis and announces
// every report on a pub/sub channel.
type RedisPublisher struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

func NewRedisPublisher(rdb *redis.Client, key string, ttl time.Duration) *RedisPublisher {
	if key == "" {
		key = DefaultKey
	}
	return &RedisPublisher{
		rdb: rdb,
		key: key,
		ttl: ttl,
	}
}

func encodeReport(products []models.Product, at time.Time) ([]byte, error) {
	return json.Marshal(LowStockReport{Products: products, ReportedAt: at.UTC()})
}

// ReportLowStock implements monitor.Reporter.
func (p *RedisPublisher) ReportLowStock(ctx context.Context, products []models.Product) error {
	data, err := encodeReport(products, time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode low stock report: %w", err)
	}

	pipe := p.rdb.TxPipeline()
	pipe.Set(ctx, p.key, data, p.ttl)
	pipe.Publish(ctx, p.key, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish low stock report: %w", err)
	}
	return nil
}
