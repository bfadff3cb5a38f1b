package usecases

import (
	"context"

	"atelier/internal/shared/authorization"
)

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer signs access tokens for authenticated sessions.
type TokenIssuer interface {
	Issue(userID uint, role authorization.UserRole) (string, error)
}
