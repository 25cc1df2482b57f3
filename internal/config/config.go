package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Upload   UploadConfig
	Kafka    KafkaConfig
	Cache    CacheConfig
	Logging  LoggingConfig
	Install  InstallConfig
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port         string
	PublicHost   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// AuthConfig holds authentication specific configuration
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	BasePath string
}

// UploadConfig holds upload configuration
type UploadConfig struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// KafkaConfig holds event publishing configuration
type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// CacheConfig holds the public response cache configuration
type CacheConfig struct {
	Enabled   bool
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	PrefixKey string
}

// LoggingConfig holds logging specific configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// InstallConfig controls the one-time schema bootstrap endpoint
type InstallConfig struct {
	Enabled bool
}

// LoadConfig loads the configuration from file and environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Read from environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.publicHost", "localhost:5000")
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "120s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "transport_cms")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", "5m")

	// Auth defaults
	v.SetDefault("auth.jwtSecret", "change-me-in-production")
	v.SetDefault("auth.tokenDuration", "24h")

	// Storage defaults
	v.SetDefault("storage.basePath", "uploads")

	// Upload defaults
	v.SetDefault("upload.maxFileSize", 20971520) // 20MB
	v.SetDefault("upload.allowedExtensions", []string{".jpeg", ".jpg", ".png", ".gif", ".webp", ".pdf", ".mp4", ".mov"})

	// Kafka defaults
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "content-events")

	// Cache defaults
	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "localhost:6379")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.ttl", "60s")
	v.SetDefault("cache.prefixKey", "public-api")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Install defaults
	v.SetDefault("install.enabled", false)
}
