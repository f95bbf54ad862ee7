// Package cli defines the Cobra command tree for the glypha binary. Each file
// registers one top-level command (serve, fonts, admin, config, doctor,
// version) with the root command. Commands delegate to internal packages and
// only handle flag parsing, I/O formatting, and wiring.
package cli
