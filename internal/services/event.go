package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgram/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	commentRepo    domain.CommentRepository
	contextTimeout time.Duration
}

// NewEventService returns the EventService implementation. The comment
// repository is needed for the cascading delete.
func NewEventService(eventRepo domain.EventRepository, commentRepo domain.CommentRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		commentRepo:    commentRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, draft *domain.EventDraft, caller *domain.Identity) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.CanCreateEvent(caller) {
		if caller == nil {
			return nil, domain.ErrUnauthenticated
		}
		return nil, domain.ErrForbidden
	}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		EventName:   draft.EventName,
		Venue:       draft.Venue,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Link:        draft.Link,
		Organizer:   draft.Organizer,
		UID:         caller.UID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEventsByDay(ctx context.Context, day time.Time) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list events by day: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// UpdateEvent fully replaces the mutable fields of the event. UID and
// CreatedAt are re-asserted from the stored record, never taken from the
// draft.
func (s *eventService) UpdateEvent(ctx context.Context, id string, draft *domain.EventDraft, caller *domain.Identity) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !domain.CanMutateEvent(caller, existing) {
		return nil, domain.ErrForbidden
	}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	updated := &domain.Event{
		ID:          existing.ID,
		EventName:   draft.EventName,
		Venue:       draft.Venue,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Link:        draft.Link,
		Organizer:   draft.Organizer,
		UID:         existing.UID,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.eventRepo.Replace(ctx, updated); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("replace event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes the event together with all of its comments. Comments
// go first; the event document is removed only after every comment removal
// has been confirmed, so a partial failure leaves the event intact and the
// whole operation retryable. Deleting an already-deleted event succeeds.
func (s *eventService) DeleteEvent(ctx context.Context, id string, caller *domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get event: %w", err)
	}
	if !domain.CanMutateEvent(caller, existing) {
		return domain.ErrForbidden
	}
	if err := s.commentRepo.DeleteAll(ctx, id); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) CalendarHighlights(ctx context.Context, from, to time.Time) ([]domain.Highlight, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return domain.ClipHighlights(domain.ProjectHighlights(events), from, to), nil
}
