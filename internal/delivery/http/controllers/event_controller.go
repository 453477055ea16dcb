package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventgram/internal/delivery/http/helpers"
	"eventgram/internal/delivery/http/middleware"
	"eventgram/internal/domain"
)

// dayLayout is the wire format for day-granularity query parameters.
const dayLayout = "2006-01-02"

// EventRequest is the request body for POST /events and PUT
// /events/{eventID}. EndDate is optional; when omitted the event ends on its
// start date.
type EventRequest struct {
	EventName   string     `json:"eventName"`
	Venue       string     `json:"venue"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Link        string     `json:"link"`
	Organizer   string     `json:"organizer"`
}

// Validate implements Validator. Field length and date-order rules are
// enforced by the service; this covers the required fields only.
func (e EventRequest) Validate() []string {
	var errs []string
	if e.EventName == "" {
		errs = append(errs, "eventName is required")
	}
	if e.Venue == "" {
		errs = append(errs, "venue is required")
	}
	if e.Description == "" {
		errs = append(errs, "description is required")
	}
	if e.StartDate.IsZero() {
		errs = append(errs, "startDate is required")
	}
	return errs
}

func (e EventRequest) draft() *domain.EventDraft {
	draft := &domain.EventDraft{
		EventName:   e.EventName,
		Venue:       e.Venue,
		Description: e.Description,
		StartDate:   e.StartDate,
		Link:        e.Link,
		Organizer:   e.Organizer,
	}
	if e.EndDate != nil {
		draft.EndDate = *e.EndDate
	}
	return draft
}

// EventSuccessResponse is the success response envelope for event endpoints
// returning a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger *slog.Logger
	Events domain.EventService
}

func NewEventController(logger *slog.Logger, events domain.EventService) *EventController {
	return &EventController{
		Logger: logger,
		Events: events,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates a calendar event owned by the authenticated caller. Anonymous identities may not create events.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (anonymous caller)"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller := middleware.IdentityFromContext(r.Context())
	event, err := c.Events.CreateEvent(r.Context(), req.draft(), caller)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetEvent(r.Context(), eventID)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEventsByDay godoc
// @Summary List events for a day
// @Description Returns every event whose date interval overlaps the given day, events ending soonest first.
// @Tags events
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the day's events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventController) ListEventsByDay(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing date query parameter")
		return
	}
	day, err := time.Parse(dayLayout, dateParam)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be YYYY-MM-DD")
		return
	}
	events, err := c.Events.ListEventsByDay(r.Context(), day)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// UpdateEvent godoc
// @Summary Replace an event's fields
// @Description Fully replaces the mutable fields of the event. Only the owner may update; owner and creation time never change.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventRequest true "Replacement event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	caller := middleware.IdentityFromContext(r.Context())
	event, err := c.Events.UpdateEvent(r.Context(), eventID, req.draft(), caller)
	if err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event and its comments
// @Description Removes the event together with all of its comments. Only the owner may delete. Deleting an already-deleted event succeeds.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data is null on success"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not owner)"
// @Failure 502 {object} helpers.APIResponse "error.code: storage_error (cascade incomplete; safe to retry)"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	caller := middleware.IdentityFromContext(r.Context())
	if err := c.Events.DeleteEvent(r.Context(), eventID, caller); err != nil {
		c.logFailure(r, err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

func (c *EventController) logFailure(r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
}
