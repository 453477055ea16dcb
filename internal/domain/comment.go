package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// Comment field limits, counted in runes.
const (
	MaxCommentTextLen = 140
	MaxCommentNameLen = 10
)

// Comment is a short text reaction attached to exactly one event. Comments
// are immutable once created. UID is empty for anonymous authors.
type Comment struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	UID       string    `json:"uid,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentDraft carries the caller-supplied fields for creating a comment.
type CommentDraft struct {
	Text string
	Name string
}

// Normalize trims both fields and replaces a blank name with the anonymous
// sentinel.
func (d *CommentDraft) Normalize() {
	d.Text = strings.TrimSpace(d.Text)
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		d.Name = AnonymousName
	}
}

// Validate checks the field constraints and returns a *ValidationError
// describing the first violation, or nil. Call Normalize first.
func (d *CommentDraft) Validate() error {
	if d.Text == "" {
		return &ValidationError{Field: "text", Reason: "required"}
	}
	if utf8.RuneCountInString(d.Text) > MaxCommentTextLen {
		return &ValidationError{Field: "text", Reason: "must be at most 140 characters"}
	}
	if utf8.RuneCountInString(d.Name) > MaxCommentNameLen {
		return &ValidationError{Field: "name", Reason: "must be at most 10 characters"}
	}
	return nil
}

// CommentRepository defines the interface for comment storage. Comments live
// in a sub-collection scoped to their parent event and are always addressed
// through it.
type CommentRepository interface {
	Create(ctx context.Context, eventID string, comment *Comment) error
	GetByID(ctx context.Context, eventID, id string) (*Comment, error)
	// ListByEvent returns the event's comments ordered ascending by CreatedAt.
	ListByEvent(ctx context.Context, eventID string) ([]*Comment, error)
	Delete(ctx context.Context, eventID, id string) error
	// DeleteAll removes every comment under the event. Used only by the
	// cascading event delete; individual removals run concurrently and the
	// call fails if any of them fails.
	DeleteAll(ctx context.Context, eventID string) error
}

// CommentService defines the business logic for the comment lifecycle.
type CommentService interface {
	CreateComment(ctx context.Context, eventID string, draft *CommentDraft, caller *Identity) (*Comment, error)
	ListComments(ctx context.Context, eventID string) ([]*Comment, error)
	DeleteComment(ctx context.Context, eventID, commentID string, caller *Identity) error
}
