package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Keddaaa/Aurane/internal/logging"
	"github.com/Keddaaa/Aurane/internal/model"
	"github.com/Keddaaa/Aurane/internal/platform"
)

// DefaultLimit caps the number of fonts returned by a search
const DefaultLimit = 50

// ErrEmptyPath is returned when no database path is configured
var ErrEmptyPath = errors.New("catalog database path cannot be empty")

//go:embed seed.json
var seedJSON []byte

// Store is a SQLite-backed font catalog
type Store struct {
	db    *sql.DB
	limit int
}

// Open opens (or creates) the catalog at path, migrates it and seeds the
// starter fonts when the catalog is empty.
func Open(ctx context.Context, path string) (*Store, error) {
	log := logging.FromContext(ctx)

	if path == "" {
		return nil, ErrEmptyPath
	}

	db, err := NewConnection(ctx, path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, limit: DefaultLimit}

	if err := s.refold(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	count, err := s.Count(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if count == 0 {
		seed, err := ParseFonts(seedJSON)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to parse seed catalog: %w", err)
		}
		n, err := s.Import(ctx, seed)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Info().Int("fonts", n).Msg("catalog seeded")
	}

	return s, nil
}

// SetLimit sets the maximum number of search results; values below 1 reset it to DefaultLimit
func (s *Store) SetLimit(limit int) {
	if limit < 1 {
		limit = DefaultLimit
	}
	s.limit = limit
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SearchFonts returns fonts whose name contains query, case-insensitively,
// ordered by name. Case folding happens in Go since SQLite only folds ASCII.
func (s *Store) SearchFonts(ctx context.Context, query string) ([]model.Font, error) {
	pattern := "%" + escapeLike(foldName(strings.TrimSpace(query))) + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, url FROM fonts WHERE name_folded LIKE ? ESCAPE '\' ORDER BY name COLLATE NOCASE LIMIT ?`,
		pattern, s.limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}
	defer rows.Close()

	return scanFonts(rows)
}

// List returns every font in the catalog ordered by name
func (s *Store) List(ctx context.Context) ([]model.Font, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, url FROM fonts ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog: %w", err)
	}
	defer rows.Close()

	return scanFonts(rows)
}

// Count returns the number of fonts in the catalog
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fonts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count catalog: %w", err)
	}
	return n, nil
}

// Import upserts fonts in a single transaction and returns how many were
// written. Fonts without a name or URL are skipped.
func (s *Store) Import(ctx context.Context, fonts []model.Font) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fonts (name, url, name_folded) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET url = excluded.url, name_folded = excluded.name_folded,
		 updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	imported := 0
	for _, font := range fonts {
		name := strings.TrimSpace(font.Name)
		url := strings.TrimSpace(font.URL)
		if name == "" || url == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, name, url, foldName(name)); err != nil {
			return 0, fmt.Errorf("failed to import font %q: %w", name, err)
		}
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	return imported, nil
}

// ImportFile imports a JSON array of {name, url} objects
func (s *Store) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}
	fonts, err := ParseFonts(data)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s.Import(ctx, fonts)
}

// ParseFonts decodes a JSON array of fonts
func ParseFonts(data []byte) ([]model.Font, error) {
	var fonts []model.Font
	if err := json.Unmarshal(data, &fonts); err != nil {
		return nil, err
	}
	return fonts, nil
}

// DefaultPath returns the catalog location under the user's data directory
func DefaultPath() (string, error) {
	dir, err := platform.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "catalog.db"), nil
}

func scanFonts(rows *sql.Rows) ([]model.Font, error) {
	fonts := make([]model.Font, 0)
	for rows.Next() {
		var f model.Font
		if err := rows.Scan(&f.Name, &f.URL); err != nil {
			return nil, fmt.Errorf("failed to scan font: %w", err)
		}
		fonts = append(fonts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fonts: %w", err)
	}
	return fonts, nil
}

// refold fills name_folded for rows written before the column existed
func (s *Store) refold(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM fonts WHERE name_folded = ''`)
	if err != nil {
		return fmt.Errorf("failed to read unfolded names: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return fmt.Errorf("failed to scan name: %w", err)
		}
		names = append(names, name)
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read unfolded names: %w", err)
	}

	for _, name := range names {
		if _, err := s.db.ExecContext(ctx,
			`UPDATE fonts SET name_folded = ? WHERE name = ?`, foldName(name), name); err != nil {
			return fmt.Errorf("failed to fold %q: %w", name, err)
		}
	}
	return nil
}

func foldName(s string) string {
	return strings.ToLower(s)
}

// escapeLike escapes LIKE wildcards so the query matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
