package controllers

import (
	"log/slog"
	"net/http"

	"eventgram/internal/delivery/http/helpers"
	"eventgram/internal/delivery/http/middleware"
	"eventgram/internal/domain"
)

// CommentRequest is the request body for POST /events/{eventID}/comments.
// A blank name is replaced with the anonymous display name.
type CommentRequest struct {
	Text string `json:"text"`
	Name string `json:"name"`
}

// Validate implements Validator.
func (c CommentRequest) Validate() []string {
	var errs []string
	if c.Text == "" {
		errs = append(errs, "text is required")
	}
	return errs
}

// CommentSuccessResponse is the success response envelope for POST
// /events/{eventID}/comments.
type CommentSuccessResponse struct {
	Data  *domain.Comment   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CommentListSuccessResponse is the success response envelope for GET
// /events/{eventID}/comments.
type CommentListSuccessResponse struct {
	Data  []*domain.Comment `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type CommentController struct {
	Logger   *slog.Logger
	Comments domain.CommentService
}

func NewCommentController(logger *slog.Logger, comments domain.CommentService) *CommentController {
	return &CommentController{
		Logger:   logger,
		Comments: comments,
	}
}

// CreateComment godoc
// @Summary Comment on an event
// @Description Attaches a comment to an existing event. Open to every caller, including anonymous and unauthenticated ones.
// @Tags comments
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param comment body CommentRequest true "Comment data"
// @Success 201 {object} controllers.CommentSuccessResponse "data contains the created comment"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no such event)"
// @Router /events/{eventID}/comments [post]
func (c *CommentController) CreateComment(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CommentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller := middleware.IdentityFromContext(r.Context())
	draft := &domain.CommentDraft{Text: req.Text, Name: req.Name}
	comment, err := c.Comments.CreateComment(r.Context(), eventID, draft, caller)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, comment)
}

// ListComments godoc
// @Summary List an event's comments
// @Description Returns the event's comments ordered oldest first. Read fresh on every call.
// @Tags comments
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.CommentListSuccessResponse "data contains the comments"
// @Router /events/{eventID}/comments [get]
func (c *CommentController) ListComments(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	comments, err := c.Comments.ListComments(r.Context(), eventID)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, comments)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Removes a comment. Only the comment's author may delete it; anonymous comments cannot be deleted. Deleting an already-deleted comment succeeds.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param commentID path string true "Comment ID"
// @Success 200 {object} helpers.APIResponse "data is null on success"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not the author)"
// @Router /events/{eventID}/comments/{commentID} [delete]
func (c *CommentController) DeleteComment(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	commentID := r.PathValue("commentID")
	if eventID == "" || commentID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID or commentID")
		return
	}
	caller := middleware.IdentityFromContext(r.Context())
	if err := c.Comments.DeleteComment(r.Context(), eventID, commentID, caller); err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

func (c *CommentController) logFailure(r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}
