// Package config loads the service configuration with viper.
//
// Values are resolved from flags, PRODUCTS_* environment variables, an
// optional config.yaml, and finally the defaults below.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rogerio-castellano/products-msv/internal/db"
)

const (
	KeyTesting           = "testing"
	KeyHTTPAddr          = "http.addr"
	KeyDBDriver          = "db.driver"
	KeyDBDSN             = "db.dsn"
	KeyMonitorInterval   = "monitor.interval"
	KeyMonitorThreshold  = "monitor.threshold"
	KeyRedisAddr         = "redis.addr"
	KeyRedisKey          = "redis.key"
	KeyJWTSecret         = "auth.jwt_secret"
	KeyAdminUser         = "auth.admin_user"
	KeyAdminPasswordHash = "auth.admin_password_hash"
	KeyRateLimitRPS      = "ratelimit.rps"
	KeyRateLimitBurst    = "ratelimit.burst"
	KeyLogLevel          = "log.level"

	defaultSQLiteDSN = "products.db"
)

type Config struct {
	Testing bool

	HTTPAddr string

	DBDriver string
	DBDSN    string

	MonitorInterval  time.Duration
	MonitorThreshold int

	RedisAddr string
	RedisKey  string

	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string

	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
}

// AuthEnabled reports whether mutating routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// New returns a viper instance with defaults, environment binding and the
// optional config file search path set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyTesting, false)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyDBDriver, db.DriverSQLite)
	v.SetDefault(KeyDBDSN, "")
	v.SetDefault(KeyMonitorInterval, 5*time.Second)
	v.SetDefault(KeyMonitorThreshold, 10)
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisKey, "products:low_stock")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyAdminUser, "admin")
	v.SetDefault(KeyAdminPasswordHash, "")
	v.SetDefault(KeyRateLimitRPS, 0.0)
	v.SetDefault(KeyRateLimitBurst, 0)
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix("products")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return v
}

// Load reads the optional config file and resolves the final configuration.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Testing:           v.GetBool(KeyTesting),
		HTTPAddr:          v.GetString(KeyHTTPAddr),
		DBDriver:          v.GetString(KeyDBDriver),
		DBDSN:             v.GetString(KeyDBDSN),
		MonitorInterval:   v.GetDuration(KeyMonitorInterval),
		MonitorThreshold:  v.GetInt(KeyMonitorThreshold),
		RedisAddr:         v.GetString(KeyRedisAddr),
		RedisKey:          v.GetString(KeyRedisKey),
		JWTSecret:         v.GetString(KeyJWTSecret),
		AdminUser:         v.GetString(KeyAdminUser),
		AdminPasswordHash: v.GetString(KeyAdminPasswordHash),
		RateLimitRPS:      v.GetFloat64(KeyRateLimitRPS),
		RateLimitBurst:    v.GetInt(KeyRateLimitBurst),
		LogLevel:          v.GetString(KeyLogLevel),
	}

	// The bare TESTING variable switches to test mode, whatever its value.
	if _, ok := os.LookupEnv("TESTING"); ok {
		cfg.Testing = true
	}

	if err := cfg.resolveDatabase(); err != nil {
		return Config{}, err
	}

	if cfg.MonitorInterval <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %s", KeyMonitorInterval, cfg.MonitorInterval)
	}
	if cfg.MonitorThreshold <= 0 {
		return Config{}, fmt.Errorf("%s must be positive, got %d", KeyMonitorThreshold, cfg.MonitorThreshold)
	}
	if cfg.AuthEnabled() && cfg.AdminPasswordHash == "" {
		return Config{}, fmt.Errorf("%s is required when %s is set", KeyAdminPasswordHash, KeyJWTSecret)
	}

	return cfg, nil
}

func (c *Config) resolveDatabase() error {
	if c.Testing {
		c.DBDriver = db.DriverSQLite
		c.DBDSN = db.MemoryDSN
		return nil
	}

	switch c.DBDriver {
	case db.DriverSQLite:
		if c.DBDSN == "" {
			c.DBDSN = defaultSQLiteDSN
		}
	case db.DriverPostgres:
		if c.DBDSN == "" {
			c.DBDSN = os.Getenv("DATABASE_URL")
		}
		if c.DBDSN == "" {
			return fmt.Errorf("%s or DATABASE_URL is required for driver %s", KeyDBDSN, db.DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported %s %q", KeyDBDriver, c.DBDriver)
	}
	return nil
}
