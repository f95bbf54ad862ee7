// Package client is the remote facade over the Glypha font API. Each method
// issues exactly one request; there are no retries. Any failure, whether a
// non-2xx response or a transport problem, is reported as a *RemoteError.
package client
