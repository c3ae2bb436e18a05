package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repos can run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles all repos over one DBTX.
type Store struct {
	Profiles   *ProfileRepo
	Activities *ActivityRepo
	Ownership  *OwnershipRepo
	Missions   *MissionRepo
}

func NewStore(db DBTX) *Store {
	return &Store{
		Profiles:   NewProfileRepo(db),
		Activities: NewActivityRepo(db),
		Ownership:  NewOwnershipRepo(db),
		Missions:   NewMissionRepo(db),
	}
}

// WithTx runs fn inside a SQL transaction against a tx-bound Store.
func WithTx(ctx context.Context, db *sql.DB, fn func(s *Store) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(NewStore(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
