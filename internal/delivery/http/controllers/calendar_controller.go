package controllers

import (
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventgram/internal/delivery/http/helpers"
	"eventgram/internal/domain"
)

// HighlightListSuccessResponse is the success response envelope for GET
// /calendar/highlights.
type HighlightListSuccessResponse struct {
	Data  []domain.Highlight `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type CalendarController struct {
	Logger *slog.Logger
	Events domain.EventService
}

func NewCalendarController(logger *slog.Logger, events domain.EventService) *CalendarController {
	return &CalendarController{
		Logger: logger,
		Events: events,
	}
}

// Highlights godoc
// @Summary Month-view background intervals
// @Description Returns one background interval per event spanning [startDate, endDate+1d), the half-open form a calendar widget expects. Optional from/to clip the result.
// @Tags calendar
// @Produce json
// @Param from query string false "Window start (YYYY-MM-DD, inclusive)"
// @Param to query string false "Window end (YYYY-MM-DD, exclusive)"
// @Success 200 {object} controllers.HighlightListSuccessResponse "data contains the highlight intervals"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /calendar/highlights [get]
func (c *CalendarController) Highlights(w http.ResponseWriter, r *http.Request) {
	var from, to time.Time
	if s := r.URL.Query().Get("from"); s != "" {
		t, err := time.Parse(dayLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "from must be YYYY-MM-DD")
			return
		}
		from = t
	}
	if s := r.URL.Query().Get("to"); s != "" {
		t, err := time.Parse(dayLayout, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "to must be YYYY-MM-DD")
			return
		}
		to = t
	}
	highlights, err := c.Events.CalendarHighlights(r.Context(), from, to)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, highlights)
}

// ICS godoc
// @Summary iCalendar feed of all events
// @Description Serves the full event set as all-day VEVENTs. DTEND is exclusive, matching the projection's half-open intervals.
// @Tags calendar
// @Produce plain
// @Success 200 {string} string "text/calendar payload"
// @Router /calendar.ics [get]
func (c *CalendarController) ICS(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteDomainError(w, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventgram//calendar//EN")
	now := time.Now().UTC()
	for _, e := range events {
		h := e.Highlight()
		ve := cal.AddEvent(e.ID + "@eventgram")
		ve.SetDtStampTime(now)
		ve.SetSummary(e.EventName)
		ve.SetLocation(e.Venue)
		ve.SetDescription(e.Description)
		if e.Link != "" {
			ve.SetURL(e.Link)
		}
		ve.SetAllDayStartAt(h.Start)
		ve.SetAllDayEndAt(h.End)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := cal.SerializeTo(w); err != nil {
		c.Logger.ErrorContext(r.Context(), "ics serialize failed", "err", err)
	}
}
