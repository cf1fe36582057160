// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docindex maintains a searchable document store: metadata and
// extracted text in SQLite, full-text search through an FTS5 virtual
// table, and similarity lookups over stored embedding vectors.
package docindex

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/Krisha434/dockit/pkg/types"
)

// ErrNotFound is returned when an operation names a document id that is
// not in the index.
var ErrNotFound = errors.New("document not found")

const defaultMaxResults = 20

// Store manages the document index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the index database at cfg.DBPath, creating the
// schema and FTS infrastructure if they do not exist.
func Open(cfg types.IndexConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "index.db"
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		filename TEXT NOT NULL,
		content TEXT NOT NULL,
		vector TEXT NOT NULL,
		added_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='docs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE docs_fts USING fts5(title, content, content=documents, content_rowid=id)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO docs_fts(rowid, title, content) VALUES (new.id, new.title, new.content);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO docs_fts(docs_fts, rowid, title, content) VALUES('delete', old.id, old.title, old.content);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO docs_fts(docs_fts, rowid, title, content) VALUES('delete', old.id, old.title, old.content);
				INSERT INTO docs_fts(rowid, title, content) VALUES (new.id, new.title, new.content);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Add extracts text from the file at path, embeds it, and inserts a new
// document row. It returns the assigned id.
func (s *Store) Add(ctx context.Context, path, title, category string) (int64, error) {
	content, err := ExtractText(path)
	if err != nil {
		return 0, err
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if category == "" {
		category = "general"
	}

	vectorJSON, err := json.Marshal(Embed(content))
	if err != nil {
		return 0, fmt.Errorf("encoding vector: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (title, category, filename, content, vector, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		title, category, filepath.Base(path), content, string(vectorJSON),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting document: %w", err)
	}
	return res.LastInsertId()
}

// Get returns the metadata row for a document id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (types.IndexedDocument, error) {
	var d types.IndexedDocument
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, category, filename, added_at FROM documents WHERE id = ?`, id,
	).Scan(&d.ID, &d.Title, &d.Category, &d.Filename, &d.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.IndexedDocument{}, fmt.Errorf("document %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.IndexedDocument{}, fmt.Errorf("looking up document %d: %w", id, err)
	}
	return d, nil
}

// List returns metadata for every indexed document, oldest first.
func (s *Store) List(ctx context.Context) ([]types.IndexedDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, category, filename, added_at FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []types.IndexedDocument
	for rows.Next() {
		var d types.IndexedDocument
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Filename, &d.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Search runs an FTS5 full-text query over titles and content, optionally
// narrowed to a category, ranked by relevance. A limit of zero uses the
// store default.
func (s *Store) Search(ctx context.Context, query, category string, limit int) ([]types.IndexedDocument, error) {
	if query == "" {
		return nil, fmt.Errorf("search query is required")
	}
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT d.id, d.title, d.category, d.filename, d.added_at
		 FROM docs_fts
		 JOIN documents d ON d.id = docs_fts.rowid
		 WHERE docs_fts MATCH ?`)
	args = append(args, query)

	if category != "" {
		qb.WriteString(` AND d.category = ?`)
		args = append(args, category)
	}

	qb.WriteString(` ORDER BY docs_fts.rank LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}
	defer rows.Close()

	var docs []types.IndexedDocument
	for rows.Next() {
		var d types.IndexedDocument
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Filename, &d.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SimilarResult pairs a document with its cosine similarity to the target.
type SimilarResult struct {
	types.IndexedDocument `yaml:",inline"`
	Similarity            float64 `json:"similarity" yaml:"similarity"`
}

// Similar returns the topK documents most similar to the one with the
// given id, by cosine similarity over stored vectors. Documents whose
// vectors have zero norm are skipped. A topK of zero means 5.
func (s *Store) Similar(ctx context.Context, id int64, topK int) ([]SimilarResult, error) {
	if topK <= 0 {
		topK = 5
	}

	var targetJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT vector FROM documents WHERE id = ?`, id).Scan(&targetJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up document %d: %w", id, err)
	}

	var target []float64
	if err := json.Unmarshal([]byte(targetJSON), &target); err != nil {
		return nil, fmt.Errorf("decoding vector for document %d: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, category, filename, added_at, vector FROM documents WHERE id != ?`, id)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	var results []SimilarResult
	for rows.Next() {
		var (
			d          types.IndexedDocument
			vectorJSON string
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.Category, &d.Filename, &d.AddedAt, &vectorJSON); err != nil {
			return nil, fmt.Errorf("scanning candidate row: %w", err)
		}

		var vec []float64
		if err := json.Unmarshal([]byte(vectorJSON), &vec); err != nil {
			continue
		}
		sim, ok := Cosine(target, vec)
		if !ok {
			continue
		}
		results = append(results, SimilarResult{IndexedDocument: d, Similarity: sim})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Remove deletes the document with the given id. The FTS triggers keep
// the search table in sync. A missing id returns ErrNotFound.
func (s *Store) Remove(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting document %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of document %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("document %d: %w", id, ErrNotFound)
	}
	return nil
}

// Export writes the full index metadata to path as YAML.
func (s *Store) Export(ctx context.Context, path string) error {
	docs, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	data, err := yaml.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
