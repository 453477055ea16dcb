// Package store defines the document store contract the repositories are
// built on: schemaless per-collection CRUD with range/equality filters and
// ordering. Implementations live in subpackages; the memory backend serves
// tests and local development, the postgres backend serves production.
package store

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Get, Replace, and Remove when the addressed
// document does not exist.
var ErrNoDocument = errors.New("document does not exist")

// FieldID is the reserved key under which Query results carry each
// document's id. It is not part of the stored document body.
const FieldID = "_id"

// Document is a schemaless document. Timestamp fields cross the store
// boundary as time.Time values, never as strings, so that range filters and
// ordering compare them as timestamps.
type Document map[string]any

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "=="
	OpLte Op = "<="
	OpGte Op = ">="
)

// Filter restricts a Query to documents whose field compares true against
// Value. <= and >= are supported on timestamp fields, == elsewhere.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Order sorts Query results by a single field. Timestamp marks the field as
// a timestamp so backends order it by time value rather than by text.
type Order struct {
	Field      string
	Descending bool
	Timestamp  bool
}

// Store is the document store consumed by the repositories. Collections are
// addressed by path ("events", "events/{id}/comments"). Every Query call
// re-executes against current data; no cursor state is retained between
// calls.
type Store interface {
	Insert(ctx context.Context, collection string, doc Document) (id string, err error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, collection string, filters []Filter, orderBy Order) ([]Document, error)
	Replace(ctx context.Context, collection, id string, doc Document) error
	Remove(ctx context.Context, collection, id string) error
}
