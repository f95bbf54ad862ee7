// Package font defines the typography record managed by Glypha, the input
// and patch shapes used to create and change records, and the error kinds
// shared by the registry, the HTTP server and the API client.
package font
