package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the partsdepot settings. Values come from an optional YAML
// file and are then overridden by environment variables.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	API      APIConfig      `yaml:"api"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RedisConfig struct {
	URL     string        `yaml:"url"`
	CartTTL time.Duration `yaml:"cart_ttl"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

// MailConfig selects SMTP delivery when SMTPHost is set; otherwise emails
// are only logged.
type MailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_username"`
	SMTPPassword string `yaml:"smtp_password"`
	From         string `yaml:"from"`
	ShopInbox    string `yaml:"shop_inbox"`
}

// APIConfig is used by the CLI commands that talk to a running server.
type APIConfig struct {
	URL     string        `yaml:"url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

type CatalogConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type TracingConfig struct {
	// Exporter is "stdout" or empty for no tracing.
	Exporter string `yaml:"exporter"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		Redis: RedisConfig{
			URL:     "redis://localhost:6379/0",
			CartTTL: 168 * time.Hour,
		},
		Auth: AuthConfig{
			TokenTTL: 12 * time.Hour,
		},
		Mail: MailConfig{
			SMTPPort:  587,
			From:      "orders@partsdepot.mu",
			ShopInbox: "shop@partsdepot.mu",
		},
		API: APIConfig{
			URL:     "http://localhost:8080",
			Timeout: 10 * time.Second,
			Retries: 2,
		},
		Catalog: CatalogConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path or
// a missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("os.ReadFile: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("applyEnvOverrides: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.Database.URL, "PARTSDEPOT_DATABASE_URL")
	setString(&c.Redis.URL, "PARTSDEPOT_REDIS_URL")
	setString(&c.HTTP.Addr, "PARTSDEPOT_HTTP_ADDR")
	setString(&c.Auth.JWTSecret, "PARTSDEPOT_JWT_SECRET")
	setString(&c.API.URL, "PARTSDEPOT_API_URL")
	setString(&c.API.Token, "PARTSDEPOT_API_TOKEN")

	setString(&c.Mail.SMTPHost, "SMTP_HOST")
	setString(&c.Mail.SMTPUsername, "SMTP_USERNAME")
	setString(&c.Mail.SMTPPassword, "SMTP_PASSWORD")
	setString(&c.Mail.From, "MAIL_FROM")
	setString(&c.Mail.ShopInbox, "SHOP_INBOX")

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMTP_PORT[%s] is not a number", v)
		}
		c.Mail.SMTPPort = port
	}

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate reports every setting the server cannot start without.
func (c *Config) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http.addr is empty"))
	}
	if c.Database.URL == "" {
		errs = append(errs, errors.New("database.url is empty (set PARTSDEPOT_DATABASE_URL)"))
	}
	if c.Redis.URL == "" {
		errs = append(errs, errors.New("redis.url is empty (set PARTSDEPOT_REDIS_URL)"))
	}
	if c.Redis.CartTTL <= 0 {
		errs = append(errs, errors.New("redis.cart_ttl must be positive"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret is empty (set PARTSDEPOT_JWT_SECRET)"))
	}
	if c.Mail.SMTPHost != "" {
		if c.Mail.SMTPPort < 1 || c.Mail.SMTPPort > 65535 {
			errs = append(errs, fmt.Errorf("mail.smtp_port[%d] is out of range", c.Mail.SMTPPort))
		}
		if c.Mail.From == "" {
			errs = append(errs, errors.New("mail.from is empty"))
		}
	}
	if c.Mail.ShopInbox == "" {
		errs = append(errs, errors.New("mail.shop_inbox is empty"))
	}
	switch c.Tracing.Exporter {
	case "", "stdout":
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter[%s] is not valid", c.Tracing.Exporter))
	}

	return errors.Join(errs...)
}
