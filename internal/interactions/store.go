// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package interactions persists the protein annotation dataset: protein
// records, curated interaction pairs, and a cache of computed feature
// records keyed by pair.
package interactions

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/ppi-engine/pkg/types"
)

// Store manages the dataset SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the dataset database at cfg.Path, creating the
// schema if it does not exist.
func Open(cfg types.DatasetConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("dataset path not configured")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating dataset directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening dataset database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS proteins (
			accession TEXT PRIMARY KEY,
			go_mf TEXT,
			go_bp TEXT,
			go_cc TEXT,
			interpro TEXT,
			pfam TEXT,
			keywords TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS interactions (
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			labels TEXT,
			PRIMARY KEY (source, target)
		)`,
		`CREATE TABLE IF NOT EXISTS feature_cache (
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			record TEXT NOT NULL,
			PRIMARY KEY (source, target)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from a TSV import run.
type ImportSummary struct {
	Imported int
	Skipped  int
}

var proteinColumns = []string{"accession", "go_mf", "go_bp", "go_cc", "interpro", "pfam", "keywords"}

// ImportProteins reads tab-separated protein rows (accession plus the six
// annotation columns) and upserts them. A leading header row is skipped.
// Malformed rows are reported to w and skipped rather than aborting the
// import.
func (s *Store) ImportProteins(ctx context.Context, r io.Reader, w io.Writer) (ImportSummary, error) {
	rows, err := readTSV(r, len(proteinColumns))
	if err != nil {
		return ImportSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO proteins (accession, go_mf, go_bp, go_cc, interpro, pfam, keywords)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(accession) DO UPDATE SET
			go_mf=excluded.go_mf, go_bp=excluded.go_bp, go_cc=excluded.go_cc,
			interpro=excluded.interpro, pfam=excluded.pfam, keywords=excluded.keywords`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary ImportSummary
	for i, row := range rows {
		if i == 0 && isHeader(row, proteinColumns) {
			continue
		}
		if row[0] == "" {
			fmt.Fprintf(w, "skipped row %d: empty accession\n", i+1)
			summary.Skipped++
			continue
		}
		if _, err := stmt.ExecContext(ctx, row[0], row[1], row[2], row[3], row[4], row[5], row[6]); err != nil {
			return summary, fmt.Errorf("inserting protein %s: %w", row[0], err)
		}
		summary.Imported++
	}

	if err := tx.Commit(); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "proteins imported: %d, skipped: %d\n", summary.Imported, summary.Skipped)
	return summary, nil
}

var interactionColumns = []string{"source", "target", "labels"}

// ImportInteractions reads tab-separated interaction rows (source, target,
// optional labels) and upserts them. A leading header row is skipped.
func (s *Store) ImportInteractions(ctx context.Context, r io.Reader, w io.Writer) (ImportSummary, error) {
	rows, err := readTSV(r, len(interactionColumns))
	if err != nil {
		return ImportSummary{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO interactions (source, target, labels) VALUES (?, ?, ?)
		 ON CONFLICT(source, target) DO UPDATE SET labels=excluded.labels`)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary ImportSummary
	for i, row := range rows {
		if i == 0 && isHeader(row, interactionColumns) {
			continue
		}
		if row[0] == "" || row[1] == "" {
			fmt.Fprintf(w, "skipped row %d: missing accession\n", i+1)
			summary.Skipped++
			continue
		}
		if _, err := stmt.ExecContext(ctx, row[0], row[1], row[2]); err != nil {
			return summary, fmt.Errorf("inserting interaction %s-%s: %w", row[0], row[1], err)
		}
		summary.Imported++
	}

	if err := tx.Commit(); err != nil {
		return summary, err
	}
	fmt.Fprintf(w, "interactions imported: %d, skipped: %d\n", summary.Imported, summary.Skipped)
	return summary, nil
}

// readTSV reads all rows, normalizing each to width columns: short rows
// are padded with empty strings and extra columns are dropped.
func readTSV(r io.Reader, width int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading TSV: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, width)
		for i := 0; i < width && i < len(rec); i++ {
			row[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isHeader(row, columns []string) bool {
	return strings.EqualFold(row[0], columns[0])
}

// Protein returns the annotation record for an accession, or nil when the
// dataset has no such protein.
func (s *Store) Protein(ctx context.Context, accession string) (*types.Protein, error) {
	var p types.Protein
	err := s.db.QueryRowContext(ctx,
		`SELECT accession, go_mf, go_bp, go_cc, interpro, pfam, keywords
		 FROM proteins WHERE accession = ?`, accession,
	).Scan(&p.Accession, &p.GOMF, &p.GOBP, &p.GOCC, &p.InterPro, &p.Pfam, &p.Keywords)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying protein %s: %w", accession, err)
	}
	return &p, nil
}

// Interactions returns every interaction pair in deterministic order.
func (s *Store) Interactions(ctx context.Context) ([]types.Interaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, target, labels FROM interactions ORDER BY source, target`)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var pairs []types.Interaction
	for rows.Next() {
		var in types.Interaction
		if err := rows.Scan(&in.Source, &in.Target, &in.Labels); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}
		pairs = append(pairs, in)
	}
	return pairs, rows.Err()
}

// CachedFeatures returns the cached feature record for a pair, or nil on a
// cache miss.
func (s *Store) CachedFeatures(ctx context.Context, source, target string) (*types.FeatureRecord, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT record FROM feature_cache WHERE source = ? AND target = ?`,
		source, target,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying feature cache for %s-%s: %w", source, target, err)
	}

	var record types.FeatureRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("decoding cached features for %s-%s: %w", source, target, err)
	}
	return &record, nil
}

// PutFeatures stores a computed feature record for a pair, replacing any
// previous entry.
func (s *Store) PutFeatures(ctx context.Context, source, target string, record *types.FeatureRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding features for %s-%s: %w", source, target, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO feature_cache (source, target, record) VALUES (?, ?, ?)
		 ON CONFLICT(source, target) DO UPDATE SET record=excluded.record`,
		source, target, string(payload))
	if err != nil {
		return fmt.Errorf("storing features for %s-%s: %w", source, target, err)
	}
	return nil
}

// Counts returns the number of proteins and interactions in the dataset.
func (s *Store) Counts(ctx context.Context) (proteins, pairs int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM proteins`).Scan(&proteins); err != nil {
		return 0, 0, fmt.Errorf("counting proteins: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM interactions`).Scan(&pairs); err != nil {
		return 0, 0, fmt.Errorf("counting interactions: %w", err)
	}
	return proteins, pairs, nil
}
