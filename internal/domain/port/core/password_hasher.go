package core

// PasswordHasher hashes and verifies user credentials
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plaintext password
	Hash(password string) (string, error)
	// Compare reports whether password matches the stored hash.
	// Implementations must run in constant time with respect to the hash.
	Compare(hash, password string) bool
}
