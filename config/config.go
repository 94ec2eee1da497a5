package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds everything the server and CLI commands need to run.
type Config struct {
	Port           string         `toml:"port"`
	Database       DatabaseConfig `toml:"database"`
	Images         ImagesConfig   `toml:"images"`
	JWTSecret      string         `toml:"jwt_secret"`
	SessionTTL     string         `toml:"session_ttl"`
	CookieDomain   string         `toml:"cookie_domain"`
	AllowedOrigins []string       `toml:"allowed_origins"`

	// PendingPublishTTL is how old a publish marker must be before the sweeper treats it as abandoned.
	PendingPublishTTL string `toml:"pending_publish_ttl"`
}

// DatabaseConfig selects the gorm driver. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver string `toml:"driver"`
	URL    string `toml:"url"`
}

// ImagesConfig uses a tagged union pattern - Backend decides which fields are relevant.
type ImagesConfig struct {
	Backend string `toml:"backend"` // "s3" or "memory"

	// S3-specific fields
	Bucket        string `toml:"bucket,omitempty"`
	Region        string `toml:"region,omitempty"`
	Endpoint      string `toml:"endpoint,omitempty"` // set for localstack/minio in development
	PublicBaseURL string `toml:"public_base_url,omitempty"`
	SignedURLTTL  string `toml:"signed_url_ttl,omitempty"`
}

// Default returns the configuration used when no file or environment overrides are present.
func Default() *Config {
	return &Config{
		Port: "8080",
		Database: DatabaseConfig{
			Driver: "sqlite",
			URL:    "panelverse.db",
		},
		Images: ImagesConfig{
			Backend:      "memory",
			Region:       "us-east-1",
			SignedURLTTL: "15m",
		},
		SessionTTL:        "24h",
		AllowedOrigins:    []string{"http://localhost:3000"},
		PendingPublishTTL: "1h",
	}
}

// Read decodes a Config from r on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Load reads the optional TOML file at path and then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		cfg, err = Read(f)
		if err != nil {
			return nil, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&c.Port, "PORT")
	set(&c.Database.Driver, "DB_DRIVER")
	set(&c.Database.URL, "DB_URL")
	set(&c.JWTSecret, "JWT_SECRET_KEY")
	set(&c.SessionTTL, "SESSION_TTL")
	set(&c.CookieDomain, "COOKIE_DOMAIN")
	set(&c.Images.Backend, "IMAGE_BACKEND")
	set(&c.Images.Bucket, "S3_BUCKET")
	set(&c.Images.Region, "S3_REGION")
	set(&c.Images.Endpoint, "S3_ENDPOINT")
	set(&c.Images.PublicBaseURL, "IMAGE_PUBLIC_BASE_URL")
	set(&c.PendingPublishTTL, "PENDING_PUBLISH_TTL")

	if origins := getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = strings.Split(origins, ",")
	}
}

// Validate checks the fields that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown database driver: %s", c.Database.Driver)
	}
	if c.Database.URL == "" {
		return fmt.Errorf("database url is required")
	}

	switch c.Images.Backend {
	case "memory":
	case "s3":
		if c.Images.Bucket == "" {
			return fmt.Errorf("s3 image backend requires a bucket")
		}
	default:
		return fmt.Errorf("unknown image backend: %s", c.Images.Backend)
	}

	for name, d := range map[string]string{
		"session_ttl":         c.SessionTTL,
		"pending_publish_ttl": c.PendingPublishTTL,
		"signed_url_ttl":      c.Images.SignedURLTTL,
	} {
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, d, err)
		}
	}
	return nil
}

// Duration parses a duration field that Validate has already checked.
func Duration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}
