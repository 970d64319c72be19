package service

// PasswordHasher defines the interface for password hashing and verification,
// keeping the hashing algorithm (bcrypt) out of the domain.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
