// Package sqlstore implements the user and post repositories on top of
// database/sql with squirrel-built queries. Engine differences live in a
// Dialect, so PostgreSQL and SQLite share the same repository code.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures what differs between SQL engines.
type Dialect struct {
	Name                  string
	Placeholder           sq.PlaceholderFormat
	IsUniqueViolation     func(error) bool
	IsForeignKeyViolation func(error) bool
}

// Store owns the connection and hands out repositories bound to it.
type Store struct {
	db      *sql.DB
	dialect Dialect
	sb      sq.StatementBuilderType
	closers []func()
}

func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{
		db:      db,
		dialect: dialect,
		sb:      sq.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
	}
}

func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

func (s *Store) Posts() *PostRepository { return &PostRepository{store: s} }

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// OnClose registers fn to run after the connection is closed, for resources
// the *sql.DB does not own.
func (s *Store) OnClose(fn func()) { s.closers = append(s.closers, fn) }

func (s *Store) Close() error {
	err := s.db.Close()
	for _, fn := range s.closers {
		fn()
	}
	return err
}

// withTx runs fn inside a transaction, rolling back on any error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func isUnique(d Dialect, err error) bool {
	return d.IsUniqueViolation != nil && d.IsUniqueViolation(err)
}

func isForeignKey(d Dialect, err error) bool {
	return d.IsForeignKeyViolation != nil && d.IsForeignKeyViolation(err)
}
