// Package service declares the ports the usecases call for hashing, tokens,
// rate limiting, metrics and reminder transports.
package service

// MaxPasswordBytes is the longest password a hasher must accept; bcrypt ignores input past 72 bytes.
const MaxPasswordBytes = 72

// PasswordHasher hashes account passwords at registration and password reset,
// and verifies them at login.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
