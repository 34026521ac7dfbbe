// Copyright 2025 Dqjs Users
// SPDX-License-Identifier: Apache-2.0

// Package cache persists decompilation results keyed by input digest and
// options, so repeated runs over the same artifact skip the decode and
// recovery passes entirely.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles database operations
type Store struct {
	db *sql.DB
}

// Key identifies one decompilation result.
type Key struct {
	InputDigest string
	Mode        string
	Version     string
	Deobfuscate bool
	Optimize    bool
}

// DigestInput hashes the raw artifact bytes for use as a cache key.
func DigestInput(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Open initializes the SQLite-backed store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS results (
		input_digest TEXT NOT NULL,
		mode TEXT NOT NULL,
		version TEXT NOT NULL,
		deobfuscate INTEGER NOT NULL,
		optimize INTEGER NOT NULL,
		output TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (input_digest, mode, version, deobfuscate, optimize)
	);
	CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to init cache schema: %w", err)
	}
	return nil
}

// Lookup returns a cached result, with found=false on a miss.
func (s *Store) Lookup(key Key) (string, bool, error) {
	query := `
	SELECT output FROM results
	WHERE input_digest = ? AND mode = ? AND version = ? AND deobfuscate = ? AND optimize = ?
	`
	var output string
	err := s.db.QueryRow(query, key.InputDigest, key.Mode, key.Version, key.Deobfuscate, key.Optimize).Scan(&output)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return output, true, nil
}

// Save stores a result, replacing any previous entry for the key.
func (s *Store) Save(key Key, output string) error {
	query := `
	INSERT OR REPLACE INTO results (input_digest, mode, version, deobfuscate, optimize, output, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query, key.InputDigest, key.Mode, key.Version, key.Deobfuscate, key.Optimize, output, time.Now())
	if err != nil {
		return fmt.Errorf("cache save failed: %w", err)
	}
	return nil
}

// Clear drops every cached result.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM results`); err != nil {
		return fmt.Errorf("cache clear failed: %w", err)
	}
	return nil
}

// Count returns the number of cached results.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
