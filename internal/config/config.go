// Package config loads runtime settings from command-line flags, an optional
// YAML file and TICKETING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables; the first underscore after
// it separates the section from the key (TICKETING_DB_DSN -> db.dsn).
const EnvPrefix = "TICKETING_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	JWT    JWTConfig    `koanf:"jwt"`
	Mail   MailConfig   `koanf:"mail"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	Mode         string        `koanf:"mode"`
	BaseURL      string        `koanf:"base_url"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DBConfig struct {
	Driver   string `koanf:"driver"`
	DSN      string `koanf:"dsn"`
	LogLevel string `koanf:"log_level"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

// MailConfig describes the SMTP relay. An empty Host disables delivery and
// confirmation messages are only logged.
type MailConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// RegisterFlags declares every configuration key on fs together with its default.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("server.addr", ":8080", "HTTP listen address")
	fs.String("server.mode", "debug", "gin mode (debug, release, test)")
	fs.String("server.base_url", "http://localhost:8080", "public base URL used in confirmation links")
	fs.Duration("server.read_timeout", 15*time.Second, "HTTP read timeout")
	fs.Duration("server.write_timeout", 15*time.Second, "HTTP write timeout")

	fs.String("db.driver", "postgres", "database driver (mysql, postgres, sqlite)")
	fs.String("db.dsn", "host=localhost user=ticketing password=ticketing dbname=ticketing port=5432 sslmode=disable", "database DSN")
	fs.String("db.log_level", "warn", "gorm log level (silent, error, warn, info)")

	fs.String("jwt.secret", "", "HMAC secret used to sign session tokens")
	fs.Duration("jwt.ttl", 24*time.Hour, "session token lifetime")

	fs.String("mail.host", "", "SMTP host; empty disables delivery")
	fs.Int("mail.port", 587, "SMTP port")
	fs.String("mail.username", "", "SMTP username")
	fs.String("mail.password", "", "SMTP password")
	fs.String("mail.from", "no-reply@ticketing.local", "sender address")

	fs.String("log.level", "info", "log level (debug, info, warn, error)")
	fs.String("log.format", "text", "log format (text, json)")
}

// Load merges, from lowest to highest precedence, flag defaults, the YAML file at
// path (if any), environment variables and explicitly set flags.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("jwt.ttl must be positive")
	}
	return nil
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
