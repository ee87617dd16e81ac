// Package db provides PostgreSQL storage for bill drafts.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/billbuddy/internal/drafts"
	"github.com/jonathan/billbuddy/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the bill_drafts table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS bill_drafts (
	id          UUID PRIMARY KEY,
	title       TEXT NOT NULL DEFAULT '',
	purpose     TEXT NOT NULL DEFAULT '',
	definitions TEXT NOT NULL DEFAULT '',
	provisions  TEXT NOT NULL DEFAULT '',
	fiscal      TEXT NOT NULL DEFAULT '',
	enforcement TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_bill_drafts_updated_at ON bill_drafts (updated_at DESC);
`

const draftColumns = `id, title, purpose, definitions, provisions, fiscal, enforcement, created_at, updated_at`

// Create inserts a new draft and returns it with its generated ID
func (db *DB) Create(ctx context.Context, draft types.Draft) (*types.StoredDraft, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO bill_drafts (id, title, purpose, definitions, provisions, fiscal, enforcement)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+draftColumns,
		uuid.New(), draft.Title, draft.Purpose, draft.Definitions, draft.Provisions, draft.Fiscal, draft.Enforcement,
	)

	stored, err := scanDraft(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return stored, nil
}

// Get retrieves a draft by ID
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*types.StoredDraft, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+draftColumns+` FROM bill_drafts WHERE id = $1`,
		id,
	)

	stored, err := scanDraft(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, drafts.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	return stored, nil
}

// List returns all drafts, most recently updated first
func (db *DB) List(ctx context.Context) ([]types.StoredDraft, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+draftColumns+` FROM bill_drafts ORDER BY updated_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	out := []types.StoredDraft{}
	for rows.Next() {
		stored, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		out = append(out, *stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return out, nil
}

// UpdateSection replaces one section of a draft
func (db *DB) UpdateSection(ctx context.Context, id uuid.UUID, sectionID types.SectionID, text string) (*types.StoredDraft, error) {
	column, ok := sectionColumn(sectionID)
	if !ok {
		return nil, drafts.ErrUnknownSection
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE bill_drafts SET `+column+` = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+draftColumns,
		text, id,
	)

	stored, err := scanDraft(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, drafts.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", sectionID, err)
	}
	return stored, nil
}

// Delete removes a draft
func (db *DB) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM bill_drafts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return drafts.ErrDraftNotFound
	}
	return nil
}

// sectionColumn maps a section to its column; only catalog sections have one
func sectionColumn(id types.SectionID) (string, bool) {
	if !id.Valid() {
		return "", false
	}
	return string(id), true
}

func scanDraft(row pgx.Row) (*types.StoredDraft, error) {
	var s types.StoredDraft
	err := row.Scan(
		&s.ID,
		&s.Draft.Title,
		&s.Draft.Purpose,
		&s.Draft.Definitions,
		&s.Draft.Provisions,
		&s.Draft.Fiscal,
		&s.Draft.Enforcement,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
