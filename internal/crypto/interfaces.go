package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into one-way hashes and checks candidates
// against them. Plain passwords never reach the store.
type PasswordHasher interface {
	// Hash returns an encoded hash that embeds its own salt and cost.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// ErrPasswordMismatch otherwise.
	Compare(hash, password string) error
}
