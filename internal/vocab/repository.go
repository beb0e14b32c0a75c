package vocab

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Repository provides access to a community-maintained lexicon database.
// The built-in word lists remain the default source; the database exists so
// the lexicon can grow without a rebuild.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps an existing database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Connect opens a PostgreSQL lexicon database and verifies the connection.
func Connect(connectionString string) (*Repository, error) {
	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to lexicon database: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

type entryRow struct {
	Category Category `db:"category"`
	Lemma    string   `db:"lemma"`
	Target   string   `db:"target"`
	Position int      `db:"position"`
}

// ListEntries returns a collection's entries in canonical order.
func (r *Repository) ListEntries(ctx context.Context, category Category) ([]Entry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("invalid lexicon category %q", string(category))
	}

	var rows []entryRow
	query := `
		SELECT category, lemma, target, position
		FROM lexicon_entries
		WHERE category = $1
		ORDER BY position`
	if err := r.db.SelectContext(ctx, &rows, query, string(category)); err != nil {
		return nil, fmt.Errorf("failed to list %s entries: %w", category, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Lemma: row.Lemma, Target: row.Target})
	}
	return entries, nil
}

// UpsertEntry inserts or updates a single lexicon entry.
func (r *Repository) UpsertEntry(ctx context.Context, category Category, entry Entry) error {
	if !category.Valid() {
		return fmt.Errorf("invalid lexicon category %q", string(category))
	}

	query := `
		INSERT INTO lexicon_entries (category, lemma, target, position)
		VALUES ($1, $2, $3,
			COALESCE((SELECT MAX(position) + 1 FROM lexicon_entries WHERE category = $1), 0))
		ON CONFLICT (category, lemma) DO UPDATE SET target = EXCLUDED.target`
	if _, err := r.db.ExecContext(ctx, query, string(category), entry.Lemma, entry.Target); err != nil {
		return fmt.Errorf("failed to upsert %s entry %q: %w", category, entry.Lemma, err)
	}
	return nil
}

// SeedFromStore copies every collection of an in-memory store into the
// database inside a single transaction, replacing whatever was there.
func (r *Repository) SeedFromStore(ctx context.Context, store *Store) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lexicon_entries`); err != nil {
		return fmt.Errorf("failed to clear lexicon: %w", err)
	}

	insert := `
		INSERT INTO lexicon_entries (category, lemma, target, position)
		VALUES ($1, $2, $3, $4)`
	for _, category := range Categories() {
		for i, entry := range store.Entries(category) {
			if _, err := tx.ExecContext(ctx, insert, string(category), entry.Lemma, entry.Target, i); err != nil {
				return fmt.Errorf("failed to seed %s entry %q: %w", category, entry.Lemma, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lexicon seed: %w", err)
	}
	return nil
}

// NewStoreFromRepository loads every collection from the database and
// builds an immutable in-memory store from the rows.
func NewStoreFromRepository(ctx context.Context, repo *Repository) (*Store, error) {
	entries := make(map[Category][]Entry, 3)
	for _, category := range Categories() {
		list, err := repo.ListEntries(ctx, category)
		if err != nil {
			return nil, err
		}
		entries[category] = list
	}
	return NewStoreFromEntries(entries), nil
}
