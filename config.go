package inkpress

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for an inkpress site. It is built once
// at startup and passed around by reference; nothing mutates it afterwards.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr         string `yaml:"addr"`          // Listen address (default ":3000")
	DatabasePath string `yaml:"database_path"` // SQLite path (default "data/site.db")
	ContentDir   string `yaml:"content_dir"`   // Markdown content directory (default "content")

	AdminPassword string `yaml:"admin_password"` // Required: admin login password
	SessionSecret string `yaml:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `yaml:"cookie_secure"`  // Set true for HTTPS

	EntryCacheTTL time.Duration `yaml:"-"` // Entry cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.EntryCacheTTL == 0 {
		c.EntryCacheTTL = 5 * time.Minute
	}
}

// LoadConfig reads a SiteConfig from a YAML file. Secrets may be omitted from
// the file and supplied via ADMIN_PASSWORD and SESSION_SECRET instead, so the
// config file can be committed.
func LoadConfig(path string) (SiteConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var file struct {
		SiteConfig    `yaml:",inline"`
		EntryCacheTTL string `yaml:"entry_cache_ttl"` // Go duration string, e.g. "5m"
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return SiteConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg := file.SiteConfig
	if file.EntryCacheTTL != "" {
		ttl, err := time.ParseDuration(file.EntryCacheTTL)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("parse config %s: entry_cache_ttl: %w", path, err)
		}
		cfg.EntryCacheTTL = ttl
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}
