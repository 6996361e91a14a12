package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/99minutos/social-api/internal/core/domain"
)

var userColumns = []string{"id", "username", "password_hash", "is_admin", "created_at", "updated_at"}

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	store *Store
}

func scanUser(row sq.RowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var id int64
	err := r.store.sb.Insert("users").
		Columns("username", "password_hash", "is_admin", "created_at", "updated_at").
		Values(user.Username, user.PasswordHash, user.IsAdmin, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		RunWith(r.store.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		if isUnique(r.store.dialect, err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*domain.User, error) {
	row := r.store.sb.Select(userColumns...).
		From("users").
		Where(where).
		RunWith(r.store.db).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.store.sb.Select(userColumns...).
		From("users").
		OrderBy("id").
		RunWith(r.store.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	res, err := r.store.sb.Update("users").
		Set("username", user.Username).
		Set("password_hash", user.PasswordHash).
		Set("is_admin", user.IsAdmin).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		RunWith(r.store.db).
		ExecContext(ctx)
	if err != nil {
		if isUnique(r.store.dialect, err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, user.ID)
}

// Delete removes the user and every post they authored in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.store.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.store.sb.Delete("posts").
			Where(sq.Eq{"author_id": id}).
			RunWith(tx).
			ExecContext(ctx); err != nil {
			return fmt.Errorf("delete user posts: %w", err)
		}

		res, err := r.store.sb.Delete("users").
			Where(sq.Eq{"id": id}).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
