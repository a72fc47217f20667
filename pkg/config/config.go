package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Notifier backends
const (
	NotifyBackendLog   = "log"
	NotifyBackendRedis = "redis"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Workspace WorkspaceConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Notify    NotifyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// WorkspaceConfig holds the values the project synthesizer works with
type WorkspaceConfig struct {
	SeedPath        string `envconfig:"PROJECTS_SEED_PATH"`
	DefaultPICName  string `envconfig:"DEFAULT_PIC_NAME" default:"Jason Duong"`
	SupportName     string `envconfig:"SUPPORT_NAME" default:"Support"`
	LocationLabel   string `envconfig:"LOCATION_LABEL" default:"Australia"`
	CurrentUserName string `envconfig:"CURRENT_USER_NAME" default:"JasonD"`
	Timezone        string `envconfig:"WORKSPACE_TIMEZONE" default:"Local"`
}

// CacheConfig holds view-state store configuration
type CacheConfig struct {
	Backend         string        `envconfig:"CACHE_BACKEND" default:"memory"`
	ViewTTL         time.Duration `envconfig:"VIEW_TTL" default:"30m"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"5m"`
	KeyPrefix       string        `envconfig:"CACHE_KEY_PREFIX" default:"project-hub:"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host           string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port           string        `envconfig:"REDIS_PORT" default:"6379"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	ConnectTimeout time.Duration `envconfig:"REDIS_CONNECT_TIMEOUT" default:"10s"`
}

// StorageConfig holds avatar storage configuration. Avatars are read from
// the bucket only when Enabled is set.
type StorageConfig struct {
	Enabled         bool          `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"project-hub"`
	AvatarPrefix    string        `envconfig:"STORAGE_AVATAR_PREFIX" default:"avatars/"`
	PublicURL       string        `envconfig:"STORAGE_PUBLIC_URL"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	ListTimeout     time.Duration `envconfig:"STORAGE_LIST_TIMEOUT" default:"15s"`
}

// NotifyConfig holds notification configuration
type NotifyConfig struct {
	Backend string `envconfig:"NOTIFY_BACKEND" default:"log"`
	Channel string `envconfig:"NOTIFY_CHANNEL" default:"project-hub:notifications"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}
	switch c.Notify.Backend {
	case NotifyBackendLog, NotifyBackendRedis:
	default:
		return fmt.Errorf("NOTIFY_BACKEND must be %q or %q, got %q", NotifyBackendLog, NotifyBackendRedis, c.Notify.Backend)
	}
	if c.Cache.ViewTTL <= 0 {
		return fmt.Errorf("VIEW_TTL must be positive")
	}
	if c.Workspace.DefaultPICName == "" {
		return fmt.Errorf("DEFAULT_PIC_NAME is required")
	}
	if c.Storage.Enabled && c.Storage.BucketName == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when storage is enabled")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the workspace time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Workspace.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid WORKSPACE_TIMEZONE %q: %w", c.Workspace.Timezone, err)
	}
	return loc, nil
}

// UsesRedis reports whether any component needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.Cache.Backend == CacheBackendRedis || c.Notify.Backend == NotifyBackendRedis
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
