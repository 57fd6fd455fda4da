// Package config loads runtime settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"itemdesk/internal/logger"
	"itemdesk/internal/repository/db"

	"github.com/spf13/viper"
)

// MinSecretLen is the shortest accepted session signing key, in bytes.
const MinSecretLen = 32

// Config holds runtime settings for the itemdesk server.
type Config struct {
	Server   Server   `mapstructure:"server"`
	Log      Log      `mapstructure:"log"`
	Session  Session  `mapstructure:"session"`
	Database Database `mapstructure:"database"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// Session configures the signed session cookie.
type Session struct {
	Secret     string        `mapstructure:"secret"`
	TTL        time.Duration `mapstructure:"ttl"`
	CookieName string        `mapstructure:"cookie_name"`
	Secure     bool          `mapstructure:"secure"`
}

// Database selects the SQL backend. UsersDSN and ItemsDSN may be equal, in
// which case both stores share one connection pool.
type Database struct {
	Driver   string `mapstructure:"driver"`
	UsersDSN string `mapstructure:"users_dsn"`
	ItemsDSN string `mapstructure:"items_dsn"`
}

// Dialect returns the parsed driver. Call Validate first.
func (d Database) Dialect() db.Dialect {
	dialect, _ := db.ParseDialect(d.Driver)
	return dialect
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("session.cookie_name", "itemdesk_session")
	v.SetDefault("session.secure", false)
	v.SetDefault("database.driver", string(db.SQLite))
	v.SetDefault("database.users_dsn", "users.db")
	v.SetDefault("database.items_dsn", "data.db")
}

// Load reads config.yml from the first of paths that has one (none is fine),
// applies environment overrides and validates the result.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("session.secret", "SECRET_KEY", "SESSION_SECRET"); err != nil {
		return nil, fmt.Errorf("bind session secret: %w", err)
	}

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if len(c.Session.Secret) < MinSecretLen {
		return fmt.Errorf("session secret must be at least %d bytes; set SECRET_KEY", MinSecretLen)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.Session.TTL)
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		return errors.New("session cookie name is empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if _, err := db.ParseDialect(c.Database.Driver); err != nil {
		return err
	}
	if c.Database.UsersDSN == "" || c.Database.ItemsDSN == "" {
		return errors.New("database dsn is empty")
	}
	return nil
}
