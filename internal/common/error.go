// Package common defines shared sentinel errors and secure-random helpers
// used across the provisioning components. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Startup errors.
	ErrorKDFMisconfigured = errors.New("kdf misconfigured")
	ErrorBadConfig        = errors.New("invalid configuration")

	// Database errors.
	ErrorConnectionFailed = errors.New("database connection failed")
	ErrorWriteFailed      = errors.New("database write failed")
	ErrorSchemaReset      = errors.New("schema reset failed")
)
