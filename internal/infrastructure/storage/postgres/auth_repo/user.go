// Package auth_repo provides PostgreSQL implementations for auth repositories.
package auth_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"orcado/internal/core/apperror"
	"orcado/internal/core/id"
	"orcado/internal/domain/auth"
	"orcado/internal/infrastructure/storage/postgres"
)

var _ auth.UserRepository = (*UserRepo)(nil)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	tm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(tm *postgres.TxManager) *UserRepo {
	return &UserRepo{tm: tm}
}

const userColumns = `id, username, email, password_hash, full_name, role,
	is_active, last_login_at, failed_login_attempts, locked_until,
	created_at, updated_at, version`

func scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.Role, &user.IsActive, &user.LastLoginAt,
		&user.FailedLoginAttempts, &user.LockedUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.Version,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.tm.GetQuerier(ctx)

	query := `
		INSERT INTO users (
			id, username, email, password_hash, full_name, role,
			is_active, created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.FullName, user.Role, user.IsActive,
		user.CreatedAt, user.UpdatedAt, user.Version,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.tm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(q.QueryRow(ctx, query, userID))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", userID.String())
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// GetByUsername retrieves user by username (case-insensitive).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := r.tm.GetQuerier(ctx)

	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`

	user, err := scanUser(q.QueryRow(ctx, query, username))
	if err == pgx.ErrNoRows {
		return nil, apperror.NewNotFound("user", username)
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// Update updates user data with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	q := r.tm.GetQuerier(ctx)

	query := `
		UPDATE users SET
			email = $1, password_hash = $2, full_name = $3, role = $4,
			is_active = $5, last_login_at = $6, failed_login_attempts = $7,
			locked_until = $8, updated_at = NOW(), version = version + 1
		WHERE id = $9 AND version = $10
	`

	result, err := q.Exec(ctx, query,
		user.Email, user.PasswordHash, user.FullName, user.Role,
		user.IsActive, user.LastLoginAt, user.FailedLoginAttempts,
		user.LockedUntil, user.ID, user.Version,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID)
	}
	return nil
}

// List retrieves users with filtering.
func (r *UserRepo) List(ctx context.Context, filter auth.UserFilter) ([]auth.User, int, error) {
	q := r.tm.GetQuerier(ctx)

	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(username ILIKE $%d OR email ILIKE $%d OR full_name ILIKE $%d)", n, n, n))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM users` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users` + where + ` ORDER BY username`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, total, rows.Err()
}

// ExistsByUsername checks if a username is taken.
func (r *UserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "lower(username) = lower($1)", username)
}

// ExistsByEmail checks if an email is registered.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "lower(email) = lower($1)", email)
}

func (r *UserRepo) exists(ctx context.Context, cond string, arg any) (bool, error) {
	q := r.tm.GetQuerier(ctx)

	var one int
	err := q.QueryRow(ctx, "SELECT 1 FROM users WHERE "+cond+" LIMIT 1", arg).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return true, nil
}
