// Package auth_repo provides the PostgreSQL implementation of the user
// repository.
package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"traso/internal/core/apperror"
	"traso/internal/core/id"
	"traso/internal/domain/auth"
	"traso/internal/infrastructure/storage/postgres"
)

// Compile-time check.
var _ auth.UserRepository = (*UserRepo)(nil)

// UserRepo implements auth.UserRepository backed by sys_users.
type UserRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)

	q := r.builder().
		Insert("sys_users").
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": userID}, userID.String())
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, username)
}

func (r *UserRepo) getOne(ctx context.Context, where squirrel.Eq, key string) (*auth.User, error) {
	q := r.builder().
		Select(r.selectCols...).
		From("sys_users").
		Where(where).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	user := &auth.User{}
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", key)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

// Update overwrites a user with optimistic locking.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	data := postgres.StructToMap(user)
	delete(data, "id")
	version := data["version"]
	delete(data, "version")

	q := r.builder().
		Update("sys_users").
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": user.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("user", user.ID.String())
	}

	return nil
}

// Exists checks if a username is taken.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT 1 FROM sys_users WHERE username = $1", username).
		Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists: %w", err)
	}
	return true, nil
}
