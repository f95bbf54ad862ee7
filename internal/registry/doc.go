// Package registry holds the authoritative in-memory collection of font
// records. A Registry is an explicit value handed to whoever serves requests;
// there is no package-level instance. All operations are safe for concurrent
// use and each one observes and leaves a complete state.
package registry
