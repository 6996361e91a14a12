package postgres

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDialect_ConstraintMapping(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	foreign := &pgconn.PgError{Code: "23503"}
	other := errors.New("connection reset")

	if !Dialect.IsUniqueViolation(unique) {
		t.Errorf("wrapped 23505 should be a unique violation")
	}
	if Dialect.IsUniqueViolation(foreign) || Dialect.IsUniqueViolation(other) {
		t.Errorf("only 23505 is a unique violation")
	}
	if !Dialect.IsForeignKeyViolation(foreign) {
		t.Errorf("23503 should be a foreign key violation")
	}
	if Dialect.IsForeignKeyViolation(unique) {
		t.Errorf("23505 is not a foreign key violation")
	}
}

func TestMigrations_Embedded(t *testing.T) {
	ups, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	downs, err := fs.Glob(migrations, "migrations/*.down.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(ups) == 0 || len(ups) != len(downs) {
		t.Fatalf("expected paired migrations, got %d up and %d down", len(ups), len(downs))
	}
}

func TestNewPool_RejectsMalformedDSN(t *testing.T) {
	if _, err := NewPool(context.Background(), "postgres://%zz", 1); err == nil {
		t.Fatalf("expected parse error")
	}
}
