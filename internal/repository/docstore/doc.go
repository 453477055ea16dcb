// Package docstore implements the event and comment repositories on top of
// the document store contract. It translates between domain entities and
// schemaless documents and classifies store failures into the domain error
// taxonomy.
package docstore

import (
	"time"

	"eventgram/internal/store"
)

// TimestampFields names every document key the repositories store as a
// time.Time value, across both the events and comments collections. Backends
// that serialize documents use it to restore exactly these fields on read,
// so user text that merely looks like a date is never touched.
var TimestampFields = []string{"startDate", "endDate", "createdAt", "updatedAt"}

func getString(d store.Document, key string) string {
	s, _ := d[key].(string)
	return s
}

func getTime(d store.Document, key string) time.Time {
	t, _ := d[key].(time.Time)
	return t
}
