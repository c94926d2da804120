package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ntndev/skinscan/internal/common"
	"github.com/ntndev/skinscan/internal/dbx"
	"github.com/ntndev/skinscan/internal/models"
)

// SQLiteRepository implements Repository over a SQLite database. It keeps the
// *sql.DB handle so multi-statement writes can run inside a transaction.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT id, email, name, phone, birth_date, avatar_url, password_hash
			FROM users WHERE email = ?`
	row := r.db.QueryRowContext(ctx, query, email)

	acc := &Account{}
	err := row.Scan(&acc.User.ID, &acc.User.Email, &acc.User.Name,
		&acc.User.Phone, &acc.User.BirthDate, &acc.User.AvatarURL, &acc.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return acc, nil
}

// Insert runs the duplicate-email check and the insert in a single
// transaction, so a concurrent registration surfaces as ErrDuplicateEmail
// rather than a raw constraint violation.
func (r *SQLiteRepository) Insert(ctx context.Context, acc *Account) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM users WHERE email = ?`, acc.User.Email).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists > 0 {
			return common.ErrDuplicateEmail
		}

		query := `INSERT INTO users (id, email, name, phone, birth_date, avatar_url, password_hash)
				VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err = tx.ExecContext(ctx, query,
			acc.User.ID, acc.User.Email, acc.User.Name,
			acc.User.Phone, acc.User.BirthDate, acc.User.AvatarURL, acc.PasswordHash)
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Update(ctx context.Context, user models.User) error {
	query := `UPDATE users SET name = ?, phone = ?, birth_date = ?, avatar_url = ?
			WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Phone, user.BirthDate, user.AvatarURL, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
