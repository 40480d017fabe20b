package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.ListenAddress != ":8080" || c.Session.CookieName != "event_form_session" {
		t.Fatalf("config = %+v", c)
	}
	if c.Upstream.Timeout != 120*time.Second || c.Export.Archive.Type != "none" {
		t.Fatalf("config = %+v", c)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_address: ":9000"
  read_timeout: 3s
upstream:
  base_url: "http://analysis:5000"
  timeout: 45s
session:
  max_idle: 2h
export:
  archive:
    type: local
    dir: /tmp/archive
`)
	t.Setenv("EVENT_FORM_UPSTREAM_URL", "http://override:5000")
	t.Setenv("EVENT_FORM_SECURE_COOKIE", "true")
	t.Setenv("EVENT_FORM_SESSION_MAX_IDLE", "not-a-duration")

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Server.ListenAddress != ":9000" || c.Server.ReadTimeout != 3*time.Second {
		t.Fatalf("server = %+v", c.Server)
	}
	if c.Upstream.BaseURL != "http://override:5000" || c.Upstream.Timeout != 45*time.Second {
		t.Fatalf("upstream = %+v", c.Upstream)
	}
	if !c.Session.SecureCookie || c.Session.MaxIdle != 2*time.Hour {
		t.Fatalf("session = %+v", c.Session)
	}
	if c.Export.Archive.Type != "local" || c.Export.Archive.Dir != "/tmp/archive" {
		t.Fatalf("archive = %+v", c.Export.Archive)
	}
}

func TestLoadRejectsBadArchive(t *testing.T) {
	cases := map[string]string{
		"unknown type":  "export:\n  archive:\n    type: ftp\n",
		"s3 w/o bucket": "export:\n  archive:\n    type: s3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("EVENT_FORM_TEST_BAD", "x")
	t.Setenv("EVENT_FORM_TEST_DURATION", "90s")
	if GetEnvAsDuration("EVENT_FORM_TEST_DURATION", time.Second) != 90*time.Second {
		t.Fatal("GetEnvAsDuration")
	}
	if GetEnvAsBool("EVENT_FORM_TEST_BAD", true) != true {
		t.Fatal("GetEnvAsBool")
	}
	if GetEnv("EVENT_FORM_TEST_UNSET", "fb") != "fb" {
		t.Fatal("GetEnv")
	}
}
