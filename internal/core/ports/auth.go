package ports

import "errors"

// ErrPasswordMismatch is returned by PasswordHasher.Compare for a well-formed hash that does not match.
var ErrPasswordMismatch = errors.New("password mismatch")

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil only when password matches hash.
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type TokenVerifier interface {
	// Verify returns the user id bound to a valid, unexpired token.
	Verify(token string) (string, error)
}

type TokenManager interface {
	TokenIssuer
	TokenVerifier
}
