// Package users is the credential directory: the registry of known accounts
// the session store authenticates against. The store layer depends only on
// the Repository interface, so the seeded in-memory directory and the SQLite
// directory are interchangeable.
package users

import (
	"context"

	"github.com/ntndev/skinscan/internal/models"
)

// Account couples a user's profile with their password digest. The digest
// never leaves this package's consumers; session state stores models.User
// only.
type Account struct {
	User         models.User
	PasswordHash string
}

// Repository describes lookup and mutation operations on the directory.
type Repository interface {
	// FindByEmail returns the account registered under email, or
	// common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Insert adds a new account. Returns common.ErrDuplicateEmail when the
	// email is already registered.
	Insert(ctx context.Context, acc *Account) error

	// Update replaces the mutable profile fields of the account with the
	// given user's ID. Email and ID are never changed. Returns
	// common.ErrNotFound for an unknown ID.
	Update(ctx context.Context, user models.User) error

	// Count returns the number of registered accounts. New account
	// identifiers are derived from it.
	Count(ctx context.Context) (int, error)
}
