// Package users is the credential store: a single-file SQLite table of
// accounts with bcrypt password hashes. The font API never reads it; it is
// written by the admin seeding command only.
package users
