package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/dayaniravi123/meduber/internal/auth"
	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/dayaniravi123/meduber/internal/services"
	"github.com/dayaniravi123/meduber/internal/session"
	"github.com/rs/zerolog/log"
)

// SessionHandler exposes the session manager's operations over HTTP.
type SessionHandler struct {
	session *session.Manager
	events  services.EventServiceProvider
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sess *session.Manager, events services.EventServiceProvider) *SessionHandler {
	return &SessionHandler{session: sess, events: events}
}

// SignupPayload defines the structure for signup requests.
type SignupPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles registration of the single local account.
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.session.Signup(r.Context(), payload.FirstName, payload.LastName, payload.Email, payload.Password); err != nil {
		if errors.Is(err, session.ErrDuplicateAccount) {
			log.Warn().Str("email", payload.Email).Msg("Signup rejected, account already exists")
			h.recordEvent("session.signup.rejected", "warn", "Signup rejected: an account already exists", payload.Email)
			http.Error(w, "An account already exists", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to sign up")
		http.Error(w, "Failed to sign up", http.StatusInternalServerError)
		return
	}

	h.recordEvent("session.signup", "info", "Account created", payload.Email)
	h.respondWithToken(w, http.StatusCreated)
}

// Login handles authentication against the persisted account.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.session.Login(r.Context(), payload.Email, payload.Password); err != nil {
		switch {
		case errors.Is(err, session.ErrAccountNotFound):
			h.recordEvent("session.login.failed", "warn", "Login failed: no account found", payload.Email)
			http.Error(w, "No account found", http.StatusNotFound)
		case errors.Is(err, session.ErrInvalidCredentials):
			h.recordEvent("session.login.failed", "warn", "Login failed: invalid credentials", payload.Email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to log in")
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
		}
		return
	}

	h.recordEvent("session.login", "info", "Logged in", payload.Email)
	h.respondWithToken(w, http.StatusOK)
}

// Logout resets the in-memory session and clears the auth cookie. The
// persisted account stays registered.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	email := h.session.Snapshot().User.Email
	h.session.Logout()

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Path:     "/",
	})

	if email != "" {
		h.recordEvent("session.logout", "info", "Logged out", email)
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSession returns the current session snapshot, the bootstrap result the
// presentation shell renders from.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.session.Snapshot())
}

// GetProfile returns the signed-in member's profile.
func (h *SessionHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	snap := h.session.Snapshot()
	if !snap.LoggedIn {
		http.Error(w, "No active session", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.User)
}

// UpdateProfile overwrites the in-memory profile with the staged settings
// form values.
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch models.User
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	h.session.UpdateProfile(patch)
	h.recordEvent("session.profile.updated", "info", "Profile updated", patch.Email)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.session.Snapshot().User)
}

// SetDestination switches the active top-level view of the app shell.
func (h *SessionHandler) SetDestination(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Destination session.Destination `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Destination != session.DestinationDashboard && payload.Destination != session.DestinationSearch {
		http.Error(w, "Unknown destination", http.StatusBadRequest)
		return
	}

	h.session.SetDestination(payload.Destination)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.session.Snapshot())
}

func (h *SessionHandler) respondWithToken(w http.ResponseWriter, status int) {
	snap := h.session.Snapshot()

	token, err := auth.GenerateJWT(snap.User)
	if err != nil {
		log.Error().Err(err).Str("email", snap.User.Email).Msg("Failed to generate JWT")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	// Set Secure flag based on environment.
	isProd := os.Getenv("APP_ENV") == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   isProd,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"user":    snap.User,
		"session": snap,
	})
}

func (h *SessionHandler) recordEvent(eventType, level, message, email string) {
	var actor *string
	if email != "" {
		actor = &email
	}
	if err := h.events.CreateEvent(eventType, level, message, actor); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
