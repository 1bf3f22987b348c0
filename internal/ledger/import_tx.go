package ledger

import (
	"context"
	"database/sql"
	"fmt"
)

// ImportBatch wraps a single transaction covering one bulk import run. Row
// inserts accumulate inside the transaction and become durable only on
// Commit, so a late row skip never rolls back earlier successful inserts
// within the same batch.
type ImportBatch struct {
	tx *sql.Tx
}

// BeginImport opens the transaction scope for a bulk import.
func (s *Store) BeginImport(ctx context.Context) (*ImportBatch, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin import tx: %w", err)
	}
	return &ImportBatch{tx: tx}, nil
}

// Insert adds one entry to the batch and returns its assigned id.
func (b *ImportBatch) Insert(ctx context.Context, e Entry) (int64, error) {
	res, err := b.tx.ExecContext(ctx, insertSQL, insertArgs(e)...)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Commit makes every inserted row durable.
func (b *ImportBatch) Commit() error {
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Rollback abandons the batch. Safe to call after Commit.
func (b *ImportBatch) Rollback() error {
	err := b.tx.Rollback()
	if err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("rollback import: %w", err)
	}
	return nil
}
