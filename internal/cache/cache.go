// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists rendered slide images in a SQLite database so
// repeat exports of an unchanged deck skip rasterization.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "render-cache.db"

// Store is a render cache keyed by deck content hash, slide index, and
// pixel width.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database under dir, creating the
// schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return s, nil
}

// DefaultDir returns the per-user cache directory.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ".carousel-cache"
	}
	return filepath.Join(base, "carousel")
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS renders (
			deck_hash TEXT NOT NULL,
			slide_index INTEGER NOT NULL,
			pixel_width INTEGER NOT NULL,
			png BLOB NOT NULL,
			PRIMARY KEY (deck_hash, slide_index, pixel_width)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_hash ON renders(deck_hash)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// HashFile returns the SHA-256 of the file's contents as lowercase hex.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Get returns the cached PNG for the key, or (nil, false) on a miss.
func (s *Store) Get(ctx context.Context, deckHash string, slideIndex, pixelWidth int) ([]byte, bool, error) {
	var png []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT png FROM renders WHERE deck_hash = ? AND slide_index = ? AND pixel_width = ?`,
		deckHash, slideIndex, pixelWidth,
	).Scan(&png)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying render cache: %w", err)
	}
	return png, true, nil
}

// Put stores or replaces the PNG for the key.
func (s *Store) Put(ctx context.Context, deckHash string, slideIndex, pixelWidth int, png []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO renders (deck_hash, slide_index, pixel_width, png) VALUES (?, ?, ?, ?)`,
		deckHash, slideIndex, pixelWidth, png,
	)
	if err != nil {
		return fmt.Errorf("storing render: %w", err)
	}
	return nil
}

// Purge drops every cached render for the deck hash.
func (s *Store) Purge(ctx context.Context, deckHash string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE deck_hash = ?`, deckHash); err != nil {
		return fmt.Errorf("purging renders: %w", err)
	}
	return nil
}
