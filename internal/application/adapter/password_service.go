package adapter

// PasswordService defines the interface for password hashing and comparison.
type PasswordService interface {
	// Hash hashes a plain text password.
	Hash(password string) (string, error)

	// Compare checks a plain text password against a hash.
	Compare(hash, password string) error
}
