package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"prodbook/internal/config"
)

// ErrNotFound indicates an update or delete targeted an id that no longer
// exists. No mutation happens in that case.
var ErrNotFound = errors.New("entry not found")

// Store manages entry persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the entries database and ensures the
// schema exists. Safe to call on every startup.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// Insert persists a new entry and returns its assigned id. Duplicate articles
// are permitted; multiple batches of the same article are expected.
func (s *Store) Insert(ctx context.Context, e Entry) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertSQL, insertArgs(e)...)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Update replaces every non-id field of the entry with the given id.
// Returns ErrNotFound when the id does not exist.
func (s *Store) Update(ctx context.Context, id int64, e Entry) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE entries
         SET article = ?, card = ?, color = ?, size = ?, qty = ?,
             component = ?, print_opt = ?, date = ?
         WHERE id = ?`,
		e.Article, e.Card, e.Color, e.Size, e.Qty, e.Component, e.PrintOpt, e.Date,
		id,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes the entry with the given id. Returns ErrNotFound when the id
// does not exist.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID fetches an entry by identifier, or nil when it does not exist.
func (s *Store) GetByID(ctx context.Context, id int64) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// Search returns entries matching the criteria in insertion order (by id).
// Callers are expected to Sanitize the criteria first; Search applies the
// bounds exactly as given.
func (s *Store) Search(ctx context.Context, c Criteria) ([]Entry, error) {
	where, args := c.whereClause()
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries`+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Count returns the total number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

const entryColumns = "id, article, card, color, size, qty, component, print_opt, date"

const insertSQL = `INSERT INTO entries (article, card, color, size, qty, component, print_opt, date)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

func insertArgs(e Entry) []any {
	return []any{e.Article, e.Card, e.Color, e.Size, e.Qty, e.Component, e.PrintOpt, e.Date}
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var e Entry
	if err := scanner.Scan(
		&e.ID,
		&e.Article,
		&e.Card,
		&e.Color,
		&e.Size,
		&e.Qty,
		&e.Component,
		&e.PrintOpt,
		&e.Date,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
