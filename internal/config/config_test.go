package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := withTempHome(t)
	Load()

	tests := []struct {
		key  string
		want string
	}{
		{KeyServerAddr, ":3000"},
		{KeyAPIURL, "http://localhost:3000/api"},
		{KeyLogLevel, "info"},
		{KeyLogFormat, "text"},
		{KeyUsersDB, filepath.Join(home, ".glypha", "users.db")},
	}
	for _, tt := range tests {
		if got := Get(tt.key); got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if GetBool(KeySeedDefaults) {
		t.Error("fonts.seed_defaults should default to false")
	}
}

func TestEnvOverride(t *testing.T) {
	withTempHome(t)
	t.Setenv("GLYPHA_SERVER_ADDR", "127.0.0.1:8080")
	Load()

	if got := Get(KeyServerAddr); got != "127.0.0.1:8080" {
		t.Errorf("Get(server.addr) = %q, want env override", got)
	}
}

func TestSetPersists(t *testing.T) {
	home := withTempHome(t)
	Load()

	if err := Set(KeyAPIURL, "http://fonts.internal/api"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".glypha", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("config file is empty")
	}

	viper.Reset()
	Load()
	if got := Get(KeyAPIURL); got != "http://fonts.internal/api" {
		t.Errorf("Get(api.url) after reload = %q", got)
	}
}
