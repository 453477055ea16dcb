package domain

import (
	"context"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// AnonymousName is the sentinel display name used when an organizer or a
// comment author leaves the name field blank.
const AnonymousName = "anonymous"

// Field limits, counted in runes. These match the limits the calendar client
// enforces as character counts.
const (
	MaxEventNameLen   = 30
	MaxVenueLen       = 20
	MaxDescriptionLen = 140
	MaxLinkLen        = 2000
	MaxOrganizerLen   = 10
)

// Event is a dated, named activity on the shared calendar, owned by the
// identity that created it. The interval [StartDate, EndDate] is inclusive
// on both ends; EndDate is never before StartDate.
type Event struct {
	ID          string    `json:"id"`
	EventName   string    `json:"eventName"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Link        string    `json:"link,omitempty"`
	Organizer   string    `json:"organizer"`
	UID         string    `json:"uid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDraft carries the caller-supplied fields for creating or replacing an
// event. ID, UID, CreatedAt, and UpdatedAt are never taken from a draft.
type EventDraft struct {
	EventName   string
	Venue       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Link        string
	Organizer   string
}

// Normalize trims text fields and applies the schema defaults: a blank
// organizer becomes the anonymous sentinel and a missing end date collapses
// to the start date.
func (d *EventDraft) Normalize() {
	d.EventName = strings.TrimSpace(d.EventName)
	d.Venue = strings.TrimSpace(d.Venue)
	d.Description = strings.TrimSpace(d.Description)
	d.Link = strings.TrimSpace(d.Link)
	d.Organizer = strings.TrimSpace(d.Organizer)
	if d.Organizer == "" {
		d.Organizer = AnonymousName
	}
	if d.EndDate.IsZero() {
		d.EndDate = d.StartDate
	}
}

// Validate checks the field constraints and returns a *ValidationError
// describing the first violation, or nil. Call Normalize first.
func (d *EventDraft) Validate() error {
	if d.EventName == "" {
		return &ValidationError{Field: "eventName", Reason: "required"}
	}
	if utf8.RuneCountInString(d.EventName) > MaxEventNameLen {
		return &ValidationError{Field: "eventName", Reason: "must be at most 30 characters"}
	}
	if d.Venue == "" {
		return &ValidationError{Field: "venue", Reason: "required"}
	}
	if utf8.RuneCountInString(d.Venue) > MaxVenueLen {
		return &ValidationError{Field: "venue", Reason: "must be at most 20 characters"}
	}
	if d.Description == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "must be at most 140 characters"}
	}
	if d.StartDate.IsZero() {
		return &ValidationError{Field: "startDate", Reason: "required"}
	}
	if !d.EndDate.IsZero() && d.EndDate.Before(d.StartDate) {
		return &ValidationError{Field: "endDate", Reason: "must not be before startDate"}
	}
	if d.Link != "" {
		if utf8.RuneCountInString(d.Link) > MaxLinkLen {
			return &ValidationError{Field: "link", Reason: "must be at most 2000 characters"}
		}
		if _, err := url.ParseRequestURI(d.Link); err != nil {
			return &ValidationError{Field: "link", Reason: "must be a valid URL"}
		}
	}
	if utf8.RuneCountInString(d.Organizer) > MaxOrganizerLen {
		return &ValidationError{Field: "organizer", Reason: "must be at most 10 characters"}
	}
	return nil
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListByDay returns every event whose [StartDate, EndDate] interval
	// overlaps the 24-hour window of day, ordered ascending by EndDate.
	ListByDay(ctx context.Context, day time.Time) ([]*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	Replace(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for the event lifecycle.
type EventService interface {
	CreateEvent(ctx context.Context, draft *EventDraft, caller *Identity) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListEventsByDay(ctx context.Context, day time.Time) ([]*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	UpdateEvent(ctx context.Context, id string, draft *EventDraft, caller *Identity) (*Event, error)
	DeleteEvent(ctx context.Context, id string, caller *Identity) error
	CalendarHighlights(ctx context.Context, from, to time.Time) ([]Highlight, error)
}
