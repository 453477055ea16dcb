package docstore

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"eventgram/internal/domain"
	"eventgram/internal/store"
)

func commentsCollection(eventID string) string {
	return fmt.Sprintf("events/%s/comments", eventID)
}

type commentRepository struct {
	store store.Store
}

// NewCommentRepository returns a CommentRepository over the given store.
func NewCommentRepository(s store.Store) domain.CommentRepository {
	return &commentRepository{store: s}
}

func (r *commentRepository) Create(ctx context.Context, eventID string, c *domain.Comment) error {
	id, err := r.store.Insert(ctx, commentsCollection(eventID), commentDoc(c))
	if err != nil {
		return &domain.StorageError{Op: "insert comment", Err: err}
	}
	c.ID = id
	c.EventID = eventID
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, eventID, id string) (*domain.Comment, error) {
	doc, err := r.store.Get(ctx, commentsCollection(eventID), id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "get comment", Err: err}
	}
	return docComment(eventID, id, doc), nil
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Comment, error) {
	docs, err := r.store.Query(ctx, commentsCollection(eventID), nil,
		store.Order{Field: "createdAt", Timestamp: true})
	if err != nil {
		return nil, &domain.StorageError{Op: "query comments", Err: err}
	}
	comments := make([]*domain.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, docComment(eventID, getString(d, store.FieldID), d))
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, eventID, id string) error {
	err := r.store.Remove(ctx, commentsCollection(eventID), id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return domain.ErrNotFound
		}
		return &domain.StorageError{Op: "remove comment", Err: err}
	}
	return nil
}

// DeleteAll removes every comment under the event: list once, fan out one
// remove per comment, fan in. A comment already gone counts as removed, so
// the whole cascade is safe to retry after a partial failure.
func (r *commentRepository) DeleteAll(ctx context.Context, eventID string) error {
	comments, err := r.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, c := range comments {
		g.Go(func() error {
			err := r.store.Remove(ctx, commentsCollection(eventID), c.ID)
			if err != nil && !errors.Is(err, store.ErrNoDocument) {
				return &domain.StorageError{Op: "remove comment", Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

func commentDoc(c *domain.Comment) store.Document {
	return store.Document{
		"text":      c.Text,
		"name":      c.Name,
		"uid":       c.UID,
		"createdAt": c.CreatedAt,
	}
}

func docComment(eventID, id string, d store.Document) *domain.Comment {
	return &domain.Comment{
		ID:        id,
		EventID:   eventID,
		Text:      getString(d, "text"),
		Name:      getString(d, "name"),
		UID:       getString(d, "uid"),
		CreatedAt: getTime(d, "createdAt"),
	}
}
