package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration settings
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig

	// SecretKey signs admin session tokens. Required.
	SecretKey string

	// Debug enables the GraphiQL IDE and verbose database logging
	Debug bool

	// StaticRoot is the directory served under /static/ when enabled
	StaticRoot string

	// MediaRoot is the directory served under /media/ when enabled
	MediaRoot string

	// RequiredComponent names a catalog component that must exist for the
	// application to be considered ready. Empty disables the check.
	RequiredComponent string

	// VersionDisplay is the version string shown on the status page
	VersionDisplay string
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Host      string
	Port      int
	ProbePort int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	// URL, when set, is used verbatim and the discrete fields are ignored
	URL string

	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// AdminConfig holds the credentials accepted by POST /admin/login
type AdminConfig struct {
	Username string
	Password string
	TokenTTL time.Duration
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Init points viper at the .env file and registers defaults.
// envFile may be empty, in which case ".env" in the working directory is used.
// A missing file is not an error; environment variables always take precedence.
func Init(envFile string) {
	if envFile == "" {
		envFile = ".env"
	}
	viper.SetConfigFile(envFile)
	viper.SetConfigType("env")

	// Read config file (optional, ignore error if not found)
	_ = viper.ReadInConfig()

	// Environment variables take precedence over config file
	viper.AutomaticEnv()

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("PROBE_PORT", 8001)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "catalog")
	viper.SetDefault("DB_NAME", "catalog")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("STATIC_ROOT", "static")
	viper.SetDefault("MEDIA_ROOT", "media")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_TOKEN_TTL_MINUTES", 480)
	viper.SetDefault("CATALOG_VERSION_DISPLAY", "0.1.0")
}

// Load builds a Config from the current viper state
func Load() (*Config, error) {
	secretKey := viper.GetString("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required (set via environment variable or .env file)")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:      viper.GetString("HOST"),
			Port:      viper.GetInt("PORT"),
			ProbePort: viper.GetInt("PROBE_PORT"),
		},
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Admin: AdminConfig{
			Username: viper.GetString("ADMIN_USERNAME"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			TokenTTL: time.Duration(viper.GetInt("ADMIN_TOKEN_TTL_MINUTES")) * time.Minute,
		},
		SecretKey:         secretKey,
		Debug:             viper.GetBool("DEBUG"),
		StaticRoot:        viper.GetString("STATIC_ROOT"),
		MediaRoot:         viper.GetString("MEDIA_ROOT"),
		RequiredComponent: viper.GetString("REQUIRED_COMPONENT"),
		VersionDisplay:    viper.GetString("CATALOG_VERSION_DISPLAY"),
	}

	return cfg, nil
}

// Get returns the global configuration, loading it if necessary
func Get() (*Config, error) {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig, nil
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// Reload re-reads the .env file and environment and replaces the global config
func Reload() (*Config, error) {
	_ = viper.ReadInConfig()

	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return cfg, nil
}

// ConnectionString returns the PostgreSQL connection string.
// DATABASE_URL wins over the discrete DB_* settings.
func (c *DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Database,
		c.SSLMode,
	)
}
