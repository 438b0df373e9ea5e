package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	MongoDB   MongoDBConfig   `mapstructure:"mongodb"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Delivery  DeliveryConfig  `mapstructure:"delivery"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowedorigins"`
}

// StorageConfig selects the store backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // memory or mongodb
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	ConnectTimeout time.Duration `mapstructure:"connecttimeout"`
}

// RedisConfig holds the token denylist connection. An empty Addr keeps the denylist in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string `mapstructure:"secret"`
	ExpiresIn int    `mapstructure:"expiresin"` // seconds
}

// TTL returns the token lifetime
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.ExpiresIn) * time.Second
}

// DeliveryConfig selects how campaign messages are delivered
type DeliveryConfig struct {
	Mode        string        `mapstructure:"mode"` // simulated or gateway
	SuccessRate float64       `mapstructure:"successrate"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Gateway     GatewayConfig `mapstructure:"gateway"`
}

// GatewayConfig holds messaging gateway configuration. An empty BaseURL uses the mock gateway.
type GatewayConfig struct {
	BaseURL string `mapstructure:"baseurl"`
	APIKey  string `mapstructure:"apikey"`
	Sender  string `mapstructure:"sender"`
}

// RateLimitConfig holds request rate limits
type RateLimitConfig struct {
	Login LimitConfig `mapstructure:"login"`
}

// LimitConfig is a token bucket per client IP
type LimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

const (
	StorageMemory  = "memory"
	StorageMongoDB = "mongodb"

	DeliverySimulated = "simulated"
	DeliveryGateway   = "gateway"
)

// Load loads configuration from defaults, an optional config.yaml and
// environment variables, in increasing priority. Environment keys use
// underscores for nesting, e.g. JWT_SECRET or DELIVERY_SUCCESSRATE.
func Load(configPaths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configPaths) == 0 {
		configPaths = []string{".", "./config"}
	}
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	setDefaults(v)

	// Read configuration
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set (JWT_SECRET)")
	}
	if c.JWT.ExpiresIn <= 0 {
		return fmt.Errorf("jwt.expiresIn must be positive, got %d", c.JWT.ExpiresIn)
	}
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageMongoDB:
		if c.MongoDB.URI == "" {
			return errors.New("mongodb.uri must be set when storage.driver is mongodb")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Delivery.Mode {
	case DeliverySimulated, DeliveryGateway:
	default:
		return fmt.Errorf("unknown delivery mode %q", c.Delivery.Mode)
	}
	return nil
}

// setDefaults sets default values for configuration.
// Every key needs a default so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "4000")
	v.SetDefault("server.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "engage-crm")
	v.SetDefault("mongodb.connectTimeout", 10*time.Second)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiresIn", 24*60*60) // 24 hours
	v.SetDefault("delivery.mode", DeliverySimulated)
	v.SetDefault("delivery.successRate", 0.9)
	v.SetDefault("delivery.timeout", 5*time.Second)
	v.SetDefault("delivery.gateway.baseUrl", "")
	v.SetDefault("delivery.gateway.apiKey", "")
	v.SetDefault("delivery.gateway.sender", "EngageCRM")
	v.SetDefault("rateLimit.login.rps", 1.0)
	v.SetDefault("rateLimit.login.burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
