package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"twototango/internal/delivery/http/controllers"
	"twototango/internal/delivery/http/middleware"
	"twototango/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	eventController *controllers.EventController,
	interestController *controllers.InterestController,
	userController *controllers.UserController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Events
	mux.HandleFunc("POST /events", requireAuth(eventController.Create))
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetByID)
	mux.HandleFunc("PUT /events/{eventID}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.Delete))
	// DELETE deliberately performs the same toggle as POST.
	mux.HandleFunc("POST /events/{eventID}/rsvp", requireAuth(eventController.RSVP))
	mux.HandleFunc("DELETE /events/{eventID}/rsvp", requireAuth(eventController.RSVP))
	mux.HandleFunc("GET /events/{eventID}/suggested-attendees", eventController.SuggestedAttendees)

	// Interests
	mux.HandleFunc("POST /interests", requireAuth(interestController.Create))
	mux.HandleFunc("GET /interests", interestController.List)
	mux.HandleFunc("GET /interests/{interestID}", interestController.GetByID)

	// Users
	mux.HandleFunc("GET /users/{userID}", requireAuth(userController.GetByID))
	mux.HandleFunc("PUT /users/{userID}", requireAuth(userController.Update))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
