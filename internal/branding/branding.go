// Package branding provides compile-time identity values for the binary.
//
// The values live in branding.yaml next to this file and are baked in with
// //go:embed, so a rename only touches the YAML.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "glypha",
			DisplayName: "Glypha",
			Description: "Admin backend for typography records",
			HomeDir:     ".glypha",
			EnvPrefix:   "GLYPHA",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "glypha").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Glypha").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".glypha").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GLYPHA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// UserAgent returns the User-Agent sent by the API client.
func UserAgent() string { load(); return defaults.CLIName + "-client" }
