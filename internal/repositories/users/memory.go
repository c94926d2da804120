package users

import (
	"context"
	"strconv"
	"sync"

	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/models"
	"github.com/ntndev/skinscan/internal/passwordx"
)

// MemoryRepository is an in-memory Repository, used by tests and as the
// demo-mode directory when no database is configured.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts []*Account
}

func NewMemoryRepository(accounts ...*Account) *MemoryRepository {
	r := &MemoryRepository{}
	for _, acc := range accounts {
		a := *acc
		r.accounts = append(r.accounts, &a)
	}
	return r
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acc := range r.accounts {
		if acc.User.Email == email {
			a := *acc
			return &a, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) Insert(ctx context.Context, acc *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.User.Email == acc.User.Email {
			return common.ErrDuplicateEmail
		}
	}
	a := *acc
	r.accounts = append(r.accounts, &a)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acc := range r.accounts {
		if acc.User.ID == user.ID {
			// id and email stay as registered
			acc.User.Name = user.Name
			acc.User.Phone = user.Phone
			acc.User.BirthDate = user.BirthDate
			acc.User.AvatarURL = user.AvatarURL
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts), nil
}

// demo accounts preloaded into an empty directory
var demoAccounts = []struct {
	name     string
	email    string
	password string
}{
	{name: "NNT", email: "NNT@gmail.com", password: "30042003"},
	{name: "NNT2", email: "NNT2@gmail.com", password: "30042003"},
}

// SeedDemo inserts the built-in demo accounts when the directory is empty.
// Passwords are hashed at seed time so the directory never holds plaintext.
func SeedDemo(ctx context.Context, repo Repository) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for i, d := range demoAccounts {
		hash, err := passwordx.Hash(d.password)
		if err != nil {
			return err
		}
		acc := &Account{
			User: models.User{
				ID:    strconv.Itoa(i + 1),
				Email: d.email,
				Name:  d.name,
			},
			PasswordHash: hash,
		}
		if err := repo.Insert(ctx, acc); err != nil {
			return err
		}
	}
	return nil
}
