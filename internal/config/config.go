package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Server struct {
	ListenAddress string        `yaml:"listen_address"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
}

type Upstream struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

type Geo struct {
	Path string `yaml:"path"`
}

type Session struct {
	DBPath        string        `yaml:"db_path"`
	CookieName    string        `yaml:"cookie_name"`
	MaxIdle       time.Duration `yaml:"max_idle"`
	PurgeInterval time.Duration `yaml:"purge_interval"`
	SecureCookie  bool          `yaml:"secure_cookie"`
}

// Archive selects where successful exports are copied: none, local or s3
type Archive struct {
	Type   string `yaml:"type"`
	Dir    string `yaml:"dir"`
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	Region string `yaml:"region"`
}

type Export struct {
	Archive Archive `yaml:"archive"`
}

type Config struct {
	Server   Server   `yaml:"server"`
	Upstream Upstream `yaml:"upstream"`
	Geo      Geo      `yaml:"geo"`
	Session  Session  `yaml:"session"`
	Export   Export   `yaml:"export"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// EVENT_FORM_* environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	c.applyEnv()
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ListenAddress == "" {
		c.Server.ListenAddress = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		// analyze calls can be slow; leave room for the upstream timeout
		c.Server.WriteTimeout = 150 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "http://localhost:5000"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 120 * time.Second
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "go-event-form/1.0"
	}
	if c.Geo.Path == "" {
		c.Geo.Path = "configs/colombia_divisions.yaml"
	}
	if c.Session.DBPath == "" {
		c.Session.DBPath = "sessions.db"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "event_form_session"
	}
	if c.Session.MaxIdle == 0 {
		c.Session.MaxIdle = 24 * time.Hour
	}
	if c.Session.PurgeInterval == 0 {
		c.Session.PurgeInterval = time.Hour
	}
	if c.Export.Archive.Type == "" {
		c.Export.Archive.Type = "none"
	}
	if c.Export.Archive.Dir == "" {
		c.Export.Archive.Dir = "exports"
	}
	if c.Export.Archive.Region == "" {
		c.Export.Archive.Region = "us-east-1"
	}
}

func (c *Config) validate() error {
	switch c.Export.Archive.Type {
	case "none", "local":
	case "s3":
		if c.Export.Archive.Bucket == "" {
			return fmt.Errorf("export.archive.bucket is required for s3 archives")
		}
	default:
		return fmt.Errorf("unknown export.archive.type %q", c.Export.Archive.Type)
	}
	return nil
}
