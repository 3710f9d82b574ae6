package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"skyfolio/internal/core/apperror"
	"skyfolio/internal/domain/auth"
)

const usersTable = "site_users"

// UserRepo implements auth.UserRepository over the site_users table.
type UserRepo struct {
	pool *Pool
}

// NewUserRepo creates a user repository.
func NewUserRepo(pool *Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *UserRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// FindByEmail retrieves a user by email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.Builder().
		Select("id", "email", "password_hash", "display_name", "created_at").
		From(usersTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.pool, &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}
