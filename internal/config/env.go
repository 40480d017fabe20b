package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"go-event-form/pkg/utils"
)

const envPrefix = "EVENT_FORM_"

// LoadDotEnv loads variables from the given files (".env" when none) into
// the process environment. A missing file is only logged.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("⚠️ Could not load .env file, using process environment")
		return
	}
	log.Println("✅ Loaded .env file")
}

// GetEnv returns the environment variable or fallback when unset
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool returns the variable as a bool or fallback when unset or invalid
func GetEnvAsBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

// GetEnvAsDuration parses values such as "5s" or "10m"
func GetEnvAsDuration(key string, fallback time.Duration) time.Duration {
	return utils.ParseDuration(os.Getenv(key), fallback)
}

func (c *Config) applyEnv() {
	c.Server.ListenAddress = GetEnv(envPrefix+"LISTEN_ADDRESS", c.Server.ListenAddress)
	c.Server.ReadTimeout = GetEnvAsDuration(envPrefix+"READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = GetEnvAsDuration(envPrefix+"WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.IdleTimeout = GetEnvAsDuration(envPrefix+"IDLE_TIMEOUT", c.Server.IdleTimeout)

	c.Upstream.BaseURL = GetEnv(envPrefix+"UPSTREAM_URL", c.Upstream.BaseURL)
	c.Upstream.Timeout = GetEnvAsDuration(envPrefix+"UPSTREAM_TIMEOUT", c.Upstream.Timeout)
	c.Upstream.UserAgent = GetEnv(envPrefix+"USER_AGENT", c.Upstream.UserAgent)

	c.Geo.Path = GetEnv(envPrefix+"GEO_PATH", c.Geo.Path)

	c.Session.DBPath = GetEnv(envPrefix+"DB_PATH", c.Session.DBPath)
	c.Session.CookieName = GetEnv(envPrefix+"COOKIE_NAME", c.Session.CookieName)
	c.Session.MaxIdle = GetEnvAsDuration(envPrefix+"SESSION_MAX_IDLE", c.Session.MaxIdle)
	c.Session.PurgeInterval = GetEnvAsDuration(envPrefix+"SESSION_PURGE_INTERVAL", c.Session.PurgeInterval)
	c.Session.SecureCookie = GetEnvAsBool(envPrefix+"SECURE_COOKIE", c.Session.SecureCookie)

	c.Export.Archive.Type = GetEnv(envPrefix+"ARCHIVE_TYPE", c.Export.Archive.Type)
	c.Export.Archive.Dir = GetEnv(envPrefix+"ARCHIVE_DIR", c.Export.Archive.Dir)
	c.Export.Archive.Bucket = GetEnv(envPrefix+"ARCHIVE_BUCKET", c.Export.Archive.Bucket)
	c.Export.Archive.Prefix = GetEnv(envPrefix+"ARCHIVE_PREFIX", c.Export.Archive.Prefix)
	c.Export.Archive.Region = GetEnv("AWS_REGION", c.Export.Archive.Region)
}
