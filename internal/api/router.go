package api

import (
	"github.com/dayaniravi123/meduber/internal/api/handlers"
	"github.com/dayaniravi123/meduber/internal/auth"
	"github.com/dayaniravi123/meduber/internal/monitoring"
	"github.com/dayaniravi123/meduber/internal/services"
	"github.com/dayaniravi123/meduber/internal/session"
	"github.com/dayaniravi123/meduber/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	hub *websocket.Hub,
	sess *session.Manager,
	directoryService services.DirectoryServiceProvider,
	selectionService services.SelectionServiceProvider,
	eventService services.EventServiceProvider,
	statUpdater *monitoring.StatUpdater,
	allowedOrigin string,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for the app frontend
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{allowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sess, eventService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, selectionService)
	eventHandler := handlers.NewEventHandler(eventService)
	healthHandler := handlers.NewHealthHandler(statUpdater)
	wsHandler := handlers.NewWebSocketHandler(hub)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket connection endpoint
		r.Get("/ws", wsHandler.Serve)

		r.Get("/health", healthHandler.Get)

		// Auth endpoints
		r.Post("/auth/signup", sessionHandler.Signup)
		r.Post("/auth/login", sessionHandler.Login)

		// Session snapshot is public: it is how the shell decides whether
		// to show the auth screens or the app.
		r.Get("/session", sessionHandler.GetSession)

		// Read-only provider directory
		r.Route("/directory", func(r chi.Router) {
			r.Get("/specialties", directoryHandler.GetSpecialties)
			r.Get("/doctors", directoryHandler.GetDoctors)
			r.Get("/doctors/{id}", directoryHandler.GetDoctor)
			r.Get("/hospitals", directoryHandler.GetHospitals)
			r.Get("/hospitals/{id}", directoryHandler.GetHospital)
			r.Get("/pharmacies", directoryHandler.GetPharmacies)
			r.Get("/pharmacies/{id}", directoryHandler.GetPharmacy)
			r.Get("/urgent-care", directoryHandler.GetUrgentCareCenters)
			r.Get("/urgent-care/{id}", directoryHandler.GetUrgentCareCenter)
			r.Get("/cardiology", directoryHandler.GetCardiologyClinics)
			r.Get("/cardiology/{id}", directoryHandler.GetCardiologyClinic)
		})

		// Routes requiring a valid token
		r.Group(func(r chi.Router) {
			r.Use(auth.JWTMiddleware())

			r.Post("/auth/logout", sessionHandler.Logout)
			r.Put("/session/destination", sessionHandler.SetDestination)
			r.Get("/profile", sessionHandler.GetProfile)
			r.Put("/profile", sessionHandler.UpdateProfile)

			r.Route("/selections", func(r chi.Router) {
				r.Get("/doctor", directoryHandler.GetSelectedDoctor)
				r.Put("/doctor", directoryHandler.SelectDoctor)
				r.Get("/clinic", directoryHandler.GetSelectedClinic)
				r.Put("/clinic", directoryHandler.SelectClinic)
			})

			r.Get("/events", eventHandler.GetRecent)
		})
	})

	return r
}
