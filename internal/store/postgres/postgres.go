// Package postgres implements the document store contract on a single jsonb
// table. Timestamp filters and ordering cast the json field to timestamptz
// so ranges compare as timestamps, never as strings.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eventgram/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection text NOT NULL,
	id uuid NOT NULL DEFAULT gen_random_uuid(),
	body jsonb NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// Store is a postgres-backed store.Store.
type Store struct {
	DB *sql.DB

	// timestampFields names the document keys that hold time.Time values.
	// Only these are restored to time.Time on read; every other field keeps
	// its JSON type, so user text that merely looks like a date stays text.
	timestampFields map[string]struct{}
}

// New returns a Store over the given connection pool. timestampFields names
// the document keys the callers store as time.Time values.
func New(db *sql.DB, timestampFields ...string) *Store {
	fields := make(map[string]struct{}, len(timestampFields))
	for _, f := range timestampFields {
		fields[f] = struct{}{}
	}
	return &Store{DB: db, timestampFields: fields}
}

// EnsureSchema creates the documents table and its index if missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	query := `
		INSERT INTO documents (collection, body)
		VALUES ($1, $2)
		RETURNING id
	`
	var id string
	if err := s.DB.QueryRowContext(ctx, query, collection, body).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	query := `SELECT body FROM documents WHERE collection = $1 AND id = $2`
	var body []byte
	err := s.DB.QueryRowContext(ctx, query, collection, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNoDocument
		}
		return nil, err
	}
	return s.decodeBody(body)
}

func (s *Store) Query(ctx context.Context, collection string, filters []store.Filter, orderBy store.Order) ([]store.Document, error) {
	query := `SELECT id, body FROM documents WHERE collection = $1`
	args := []any{collection}
	n := 2
	for _, f := range filters {
		expr := fmt.Sprintf("body->>'%s'", f.Field)
		if _, isTime := f.Value.(time.Time); isTime {
			expr = "(" + expr + ")::timestamptz"
		}
		query += fmt.Sprintf(" AND %s %s $%d", expr, sqlOp(f.Op), n)
		args = append(args, f.Value)
		n++
	}
	if orderBy.Field != "" {
		expr := fmt.Sprintf("body->>'%s'", orderBy.Field)
		if orderBy.Timestamp {
			expr = "(" + expr + ")::timestamptz"
		}
		dir := "ASC"
		if orderBy.Descending {
			dir = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s, id ASC", expr, dir)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	docs := make([]store.Document, 0)
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		doc, err := s.decodeBody(body)
		if err != nil {
			return nil, err
		}
		doc[store.FieldID] = id
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) Replace(ctx context.Context, collection, id string, doc store.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	query := `UPDATE documents SET body = $3 WHERE collection = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, collection, id, body)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return store.ErrNoDocument
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`
	result, err := s.DB.ExecContext(ctx, query, collection, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return store.ErrNoDocument
	}
	return nil
}

func sqlOp(op store.Op) string {
	switch op {
	case store.OpEq:
		return "="
	case store.OpLte:
		return "<="
	case store.OpGte:
		return ">="
	}
	return "="
}

// decodeBody unmarshals a jsonb body and restores the registered timestamp
// fields to time.Time, keeping the Document contract uniform across backends.
func (s *Store) decodeBody(body []byte) (store.Document, error) {
	var doc store.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	for k := range s.timestampFields {
		v, ok := doc[k].(string)
		if !ok {
			continue
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			doc[k] = t
		}
	}
	return doc, nil
}
