// Package service defines interfaces for domain collaborators that live in
// infrastructure: hashing, tokens, time, messaging, push and QR rendering.
package service

// PasswordHasher hashes and compares passwords. The hash format is opaque to callers.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
