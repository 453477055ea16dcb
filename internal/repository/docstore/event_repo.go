package docstore

import (
	"context"
	"errors"
	"time"

	"eventgram/internal/domain"
	"eventgram/internal/store"
)

const eventsCollection = "events"

type eventRepository struct {
	store store.Store
}

// NewEventRepository returns an EventRepository over the given store.
func NewEventRepository(s store.Store) domain.EventRepository {
	return &eventRepository{store: s}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	id, err := r.store.Insert(ctx, eventsCollection, eventDoc(e))
	if err != nil {
		return &domain.StorageError{Op: "insert event", Err: err}
	}
	e.ID = id
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	doc, err := r.store.Get(ctx, eventsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "get event", Err: err}
	}
	return docEvent(id, doc), nil
}

func (r *eventRepository) ListByDay(ctx context.Context, day time.Time) ([]*domain.Event, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	// timestamptz resolution is microseconds; a nanosecond-grained bound would
	// round up to the next midnight on the server and match day+1 events.
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Microsecond)
	docs, err := r.store.Query(ctx, eventsCollection,
		[]store.Filter{
			{Field: "startDate", Op: store.OpLte, Value: dayEnd},
			{Field: "endDate", Op: store.OpGte, Value: dayStart},
		},
		store.Order{Field: "endDate", Timestamp: true},
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "query events by day", Err: err}
	}
	return docEvents(docs), nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	docs, err := r.store.Query(ctx, eventsCollection, nil,
		store.Order{Field: "startDate", Timestamp: true})
	if err != nil {
		return nil, &domain.StorageError{Op: "query events", Err: err}
	}
	return docEvents(docs), nil
}

func (r *eventRepository) Replace(ctx context.Context, e *domain.Event) error {
	err := r.store.Replace(ctx, eventsCollection, e.ID, eventDoc(e))
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return domain.ErrNotFound
		}
		return &domain.StorageError{Op: "replace event", Err: err}
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	err := r.store.Remove(ctx, eventsCollection, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return domain.ErrNotFound
		}
		return &domain.StorageError{Op: "remove event", Err: err}
	}
	return nil
}

func eventDoc(e *domain.Event) store.Document {
	return store.Document{
		"eventName":   e.EventName,
		"venue":       e.Venue,
		"description": e.Description,
		"startDate":   e.StartDate,
		"endDate":     e.EndDate,
		"link":        e.Link,
		"organizer":   e.Organizer,
		"uid":         e.UID,
		"createdAt":   e.CreatedAt,
		"updatedAt":   e.UpdatedAt,
	}
}

func docEvent(id string, d store.Document) *domain.Event {
	return &domain.Event{
		ID:          id,
		EventName:   getString(d, "eventName"),
		Venue:       getString(d, "venue"),
		Description: getString(d, "description"),
		StartDate:   getTime(d, "startDate"),
		EndDate:     getTime(d, "endDate"),
		Link:        getString(d, "link"),
		Organizer:   getString(d, "organizer"),
		UID:         getString(d, "uid"),
		CreatedAt:   getTime(d, "createdAt"),
		UpdatedAt:   getTime(d, "updatedAt"),
	}
}

func docEvents(docs []store.Document) []*domain.Event {
	events := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		events = append(events, docEvent(getString(d, store.FieldID), d))
	}
	return events
}
