package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventgram/internal/delivery/http/controllers"
)

// Middleware wraps a handler func, e.g. to resolve the caller identity.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// NewRouter initializes the HTTP router with all application routes. Every
// route goes through withIdentity so handlers can read the optional caller
// identity from the request context.
func NewRouter(
	events *controllers.EventController,
	comments *controllers.CommentController,
	calendar *controllers.CalendarController,
	auth *controllers.AuthController,
	withIdentity Middleware,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", withIdentity(events.CreateEvent))
	mux.HandleFunc("GET /events", withIdentity(events.ListEventsByDay))
	mux.HandleFunc("GET /events/{eventID}", withIdentity(events.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}", withIdentity(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", withIdentity(events.DeleteEvent))

	// Comments
	mux.HandleFunc("POST /events/{eventID}/comments", withIdentity(comments.CreateComment))
	mux.HandleFunc("GET /events/{eventID}/comments", withIdentity(comments.ListComments))
	mux.HandleFunc("DELETE /events/{eventID}/comments/{commentID}", withIdentity(comments.DeleteComment))

	// Calendar
	mux.HandleFunc("GET /calendar/highlights", withIdentity(calendar.Highlights))
	mux.HandleFunc("GET /calendar.ics", withIdentity(calendar.ICS))

	// Auth
	mux.HandleFunc("POST /auth/guest", auth.GuestSession)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
