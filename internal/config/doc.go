// Package config manages user-level settings stored at ~/.glypha/config.yaml.
// Values can be overridden with GLYPHA_* environment variables, where dots in
// a key become underscores (server.addr → GLYPHA_SERVER_ADDR).
package config
