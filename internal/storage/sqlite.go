// Package storage provides SQLite-based persistence for imported word packs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/words"
)

// ErrPackNotFound is returned when no stored pack has the requested ID.
var ErrPackNotFound = errors.New("storage: pack not found")

// Store manages the SQLite database connection for word packs.
type Store struct {
	db *sql.DB
}

// PackInfo summarizes a stored pack.
type PackInfo struct {
	ID        string
	Name      string
	Count     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS words (
			pack_id TEXT NOT NULL REFERENCES packs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (pack_id, position)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePack stores p, replacing any pack with the same ID.
// Blank entries are dropped; a pack with no words is rejected.
func (s *Store) SavePack(p words.Pack) error {
	list := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		if w = strings.TrimSpace(w); w != "" {
			list = append(list, w)
		}
	}
	if p.ID == "" || len(list) == 0 {
		return fmt.Errorf("storage: cannot save pack %q: %w", p.ID, words.ErrEmptyCatalog)
	}
	name := p.Name
	if name == "" {
		name = p.ID
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words WHERE pack_id = ?", p.ID); err != nil {
		return fmt.Errorf("storage: cannot clear pack %q: %w", p.ID, err)
	}
	if _, err := tx.Exec(
		"INSERT INTO packs (id, name) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET name = excluded.name",
		p.ID, name,
	); err != nil {
		return fmt.Errorf("storage: cannot save pack %q: %w", p.ID, err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (pack_id, position, word) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range list {
		if _, err := stmt.Exec(p.ID, i, w); err != nil {
			return fmt.Errorf("storage: cannot save word %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit pack %q: %w", p.ID, err)
	}
	return nil
}

// Packs lists stored packs ordered by ID.
func (s *Store) Packs() ([]PackInfo, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.created_at, COUNT(w.word)
		FROM packs p
		LEFT JOIN words w ON w.pack_id = p.id
		GROUP BY p.id
		ORDER BY p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []PackInfo
	for rows.Next() {
		var info PackInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.CreatedAt, &info.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pack: %w", err)
		}
		packs = append(packs, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating packs: %w", err)
	}

	return packs, nil
}

// Pack loads a stored pack with its words in import order.
func (s *Store) Pack(id string) (words.Pack, error) {
	p := words.Pack{ID: id}
	err := s.db.QueryRow("SELECT name FROM packs WHERE id = ?", id).Scan(&p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return words.Pack{}, fmt.Errorf("%w: %q", ErrPackNotFound, id)
	}
	if err != nil {
		return words.Pack{}, fmt.Errorf("storage: cannot query pack %q: %w", id, err)
	}

	rows, err := s.db.Query("SELECT word FROM words WHERE pack_id = ? ORDER BY position", id)
	if err != nil {
		return words.Pack{}, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return words.Pack{}, fmt.Errorf("storage: cannot scan word: %w", err)
		}
		p.Words = append(p.Words, w)
	}

	if err := rows.Err(); err != nil {
		return words.Pack{}, fmt.Errorf("storage: error iterating words: %w", err)
	}

	return p, nil
}

// DeletePack removes a stored pack and its words.
func (s *Store) DeletePack(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words WHERE pack_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete words of %q: %w", id, err)
	}
	result, err := tx.Exec("DELETE FROM packs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete pack %q: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrPackNotFound, id)
	}

	return tx.Commit()
}
