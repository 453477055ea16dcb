package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventgram/internal/domain"
)

type commentService struct {
	eventRepo      domain.EventRepository
	commentRepo    domain.CommentRepository
	contextTimeout time.Duration
}

// NewCommentService returns the CommentService implementation.
func NewCommentService(eventRepo domain.EventRepository, commentRepo domain.CommentRepository, timeout time.Duration) domain.CommentService {
	return &commentService{
		eventRepo:      eventRepo,
		commentRepo:    commentRepo,
		contextTimeout: timeout,
	}
}

// CreateComment attaches a comment to an existing event. Any caller may
// comment, including anonymous and unauthenticated ones; authenticated
// callers get their uid stamped so they can delete their own comments later.
func (s *commentService) CreateComment(ctx context.Context, eventID string, draft *domain.CommentDraft, caller *domain.Identity) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.CanCreateComment(caller) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		EventID:   eventID,
		Text:      draft.Text,
		Name:      draft.Name,
		CreatedAt: time.Now().UTC(),
	}
	if caller != nil {
		comment.UID = caller.UID
	}
	if err := s.commentRepo.Create(ctx, eventID, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// ListComments returns the event's comments, oldest first. The list is read
// fresh on every call so it always reflects the latest writes.
func (s *commentService) ListComments(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	comments, err := s.commentRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// DeleteComment removes a comment. Only the comment's own author may delete
// it; a comment without an author uid cannot be deleted by anyone. Deleting
// an already-deleted comment succeeds.
func (s *commentService) DeleteComment(ctx context.Context, eventID, commentID string, caller *domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	comment, err := s.commentRepo.GetByID(ctx, eventID, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get comment: %w", err)
	}
	if !domain.CanDeleteComment(caller, comment) {
		return domain.ErrForbidden
	}
	if err := s.commentRepo.Delete(ctx, eventID, commentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
