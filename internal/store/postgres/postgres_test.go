package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventgram/internal/store"
)

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO documents \(collection, body\)`).
		WithArgs("events", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("uuid-1"))

	s := New(db, "startDate", "endDate", "createdAt", "updatedAt")
	id, err := s.Insert(ctx, "events", store.Document{"eventName": "Meetup"})
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("restores timestamps", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		body := `{"eventName":"Meetup","startDate":"2024-06-01T00:00:00Z","venue":"Shibuya"}`
		mock.ExpectQuery(`SELECT body FROM documents`).
			WithArgs("events", "uuid-1").
			WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(body)))

		s := New(db, "startDate", "endDate", "createdAt", "updatedAt")
		doc, err := s.Get(ctx, "events", "uuid-1")
		require.NoError(t, err)
		assert.Equal(t, "Meetup", doc["eventName"])
		assert.Equal(t, "Shibuya", doc["venue"])
		start, ok := doc["startDate"].(time.Time)
		require.True(t, ok, "startDate should decode as time.Time")
		assert.True(t, start.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("date-shaped text stays text", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		body := `{"text":"2026-01-02T15:04:05Z","name":"taro","createdAt":"2024-06-01T00:00:00Z"}`
		mock.ExpectQuery(`SELECT body FROM documents`).
			WithArgs("events/ev-1/comments", "uuid-2").
			WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(body)))

		s := New(db, "startDate", "endDate", "createdAt", "updatedAt")
		doc, err := s.Get(ctx, "events/ev-1/comments", "uuid-2")
		require.NoError(t, err)
		// Only registered timestamp fields are restored; a comment whose text
		// happens to be a valid RFC3339 string keeps its string type.
		assert.Equal(t, "2026-01-02T15:04:05Z", doc["text"])
		_, isTime := doc["createdAt"].(time.Time)
		assert.True(t, isTime)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT body FROM documents`).
			WithArgs("events", "missing").
			WillReturnError(sql.ErrNoRows)

		s := New(db)
		_, err = s.Get(ctx, "events", "missing")
		require.ErrorIs(t, err, store.ErrNoDocument)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Query_BuildsTimestampComparisons(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dayStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Microsecond)

	want := `SELECT id, body FROM documents WHERE collection = $1` +
		` AND (body->>'startDate')::timestamptz <= $2` +
		` AND (body->>'endDate')::timestamptz >= $3` +
		` ORDER BY (body->>'endDate')::timestamptz ASC, id ASC`
	rows := sqlmock.NewRows([]string{"id", "body"}).
		AddRow("uuid-1", []byte(`{"eventName":"Meetup","endDate":"2024-06-01T00:00:00Z"}`))
	mock.ExpectQuery(regexp.QuoteMeta(want)).
		WithArgs("events", dayEnd, dayStart).
		WillReturnRows(rows)

	s := New(db, "startDate", "endDate", "createdAt", "updatedAt")
	docs, err := s.Query(ctx, "events",
		[]store.Filter{
			{Field: "startDate", Op: store.OpLte, Value: dayEnd},
			{Field: "endDate", Op: store.OpGte, Value: dayStart},
		},
		store.Order{Field: "endDate", Timestamp: true},
	)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "uuid-1", docs[0][store.FieldID])
	assert.Equal(t, "Meetup", docs[0]["eventName"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE documents SET body`).
			WithArgs("events", "uuid-1", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := New(db)
		require.NoError(t, s.Replace(ctx, "events", "uuid-1", store.Document{"eventName": "after"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE documents SET body`).
			WithArgs("events", "missing", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := New(db)
		err = s.Replace(ctx, "events", "missing", store.Document{})
		require.ErrorIs(t, err, store.ErrNoDocument)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM documents`).
			WithArgs("events", "uuid-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := New(db)
		require.NoError(t, s.Remove(ctx, "events", "uuid-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing document", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM documents`).
			WithArgs("events", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		s := New(db)
		err = s.Remove(ctx, "events", "missing")
		require.ErrorIs(t, err, store.ErrNoDocument)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
