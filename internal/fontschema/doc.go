// Package fontschema validates font payloads against an embedded JSON Schema.
// It covers request bodies for creating and updating fonts (JSON) and seed
// documents loaded at start-up (YAML).
package fontschema
