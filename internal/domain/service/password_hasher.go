package service

// PasswordHasher abstracts password hashing so the domain layer stays free of
// any particular algorithm.
type PasswordHasher interface {
	// Hash returns the hashed form of a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the stored hash.
	Verify(hashedPassword, password string) error
}
