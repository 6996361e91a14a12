package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/99minutos/social-api/internal/core/domain"
)

// PostRepository implements ports.PostRepository. Reads join users so every
// post carries its author summary.
type PostRepository struct {
	store *Store
}

func (r *PostRepository) selectPosts() sq.SelectBuilder {
	return r.store.sb.Select("p.id", "p.content", "p.author_id", "p.created_at", "p.updated_at", "u.username").
		From("posts p").
		Join("users u ON u.id = p.author_id")
}

func scanPost(row sq.RowScanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Content, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.Author.Username); err != nil {
		return nil, err
	}
	p.Author.ID = p.AuthorID
	return &p, nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	var id int64
	err := r.store.sb.Insert("posts").
		Columns("content", "author_id", "created_at", "updated_at").
		Values(post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt).
		Suffix("RETURNING id").
		RunWith(r.store.db).
		QueryRowContext(ctx).
		Scan(&id)
	if err != nil {
		if isForeignKey(r.store.dialect, err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.selectPosts().
		Where(sq.Eq{"p.id": id}).
		RunWith(r.store.db).
		QueryRowContext(ctx)

	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select post: %w", err)
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.list(ctx, r.selectPosts())
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error) {
	return r.list(ctx, r.selectPosts().Where(sq.Eq{"p.author_id": authorID}))
}

func (r *PostRepository) list(ctx context.Context, q sq.SelectBuilder) ([]*domain.Post, error) {
	rows, err := q.OrderBy("p.id").RunWith(r.store.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	res, err := r.store.sb.Update("posts").
		Set("content", post.Content).
		Set("updated_at", post.UpdatedAt).
		Where(sq.Eq{"id": post.ID}).
		RunWith(r.store.db).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.ErrPostNotFound
	}
	return r.FindByID(ctx, post.ID)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.sb.Delete("posts").
		Where(sq.Eq{"id": id}).
		RunWith(r.store.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
