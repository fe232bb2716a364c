package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/dayaniravi123/meduber/internal/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Auth failures are non-fatal: the manager leaves its state untouched, shows
// an error banner and returns one of these so API handlers can pick a status
// code. Presentation code only needs the unchanged login state.
var (
	ErrDuplicateAccount   = errors.New("an account already exists")
	ErrAccountNotFound    = errors.New("no account found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Destination is the active top-level view of the app shell.
type Destination string

const (
	DestinationDashboard Destination = "dashboard"
	DestinationSearch    Destination = "search"
)

// BannerKind classifies a transient notification.
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// Banner is a transient, auto-dismissing notification.
type Banner struct {
	Message string     `json:"message"`
	Kind    BannerKind `json:"kind"`
	Visible bool       `json:"visible"`
}

// State is an immutable snapshot of the session, safe to hand to subscribers.
type State struct {
	LoggedIn    bool        `json:"loggedIn"`
	Destination Destination `json:"destination"`
	User        models.User `json:"user"`
	Banner      Banner      `json:"banner"`
}

// Plan details are fixed for every account; the app is single-plan.
const (
	planType = "NYSHIP"
	memberID = "W1440432200"
	groupID  = "22652"
)

// Preference keys in the profile store.
const (
	keyHasSignedUp = "hasSignedUp"
	keyUserEmail   = "userEmail"
	keyFirstName   = "firstName"
	keyLastName    = "lastName"
)

// DefaultBannerDuration is how long a banner stays visible before the
// auto-hide timer fires. Selection confirmations use a longer duration.
const DefaultBannerDuration = 2 * time.Second

// Manager is the single authority for authentication state and the current
// profile. It mediates between the presentation layer and the two durable
// stores and publishes a State snapshot to subscribers on every change.
type Manager struct {
	creds store.CredentialStore
	prefs store.KeyValueStore

	mu          sync.Mutex
	state       State
	subscribers []func(State)
	hideTimer   *time.Timer
}

// NewManager creates a logged-out Manager over the given stores.
func NewManager(creds store.CredentialStore, prefs store.KeyValueStore) *Manager {
	return &Manager{
		creds: creds,
		prefs: prefs,
		state: State{
			Destination: DestinationSearch,
			User:        models.EmptyUser(),
		},
	}
}

// Subscribe registers a callback invoked with a snapshot after every state
// change. Callbacks run outside the manager's lock.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Bootstrap restores the session from durable storage at startup. Absence of
// a persisted account is not an error, just a logged-out session. It never
// transitions a logged-in session back to logged out.
func (m *Manager) Bootstrap(ctx context.Context) {
	hasSignedUp, err := store.GetBool(ctx, m.prefs, keyHasSignedUp)
	if err != nil {
		log.Warn().Err(err).Msg("Bootstrap could not read signup flag, starting logged out")
	}
	email, err := store.GetString(ctx, m.prefs, keyUserEmail)
	if err != nil {
		log.Warn().Err(err).Msg("Bootstrap could not read stored email, starting logged out")
	}

	m.mu.Lock()
	if !hasSignedUp || email == "" {
		// No persisted account: stay in whatever state we are in. Bootstrap
		// never logs an active session out.
		snap := m.state
		m.mu.Unlock()
		m.publish(snap)
		return
	}

	first, _ := store.GetString(ctx, m.prefs, keyFirstName)
	last, _ := store.GetString(ctx, m.prefs, keyLastName)
	m.state.User = newProfile(first, last, email)
	m.state.LoggedIn = true
	snap := m.state
	m.mu.Unlock()

	log.Info().Str("email", email).Msg("Session restored from durable storage")
	m.publish(snap)
}

// Signup registers the single local account. It fails with
// ErrDuplicateAccount when an account already exists, regardless of the
// requested email. Field shapes are not validated.
func (m *Manager) Signup(ctx context.Context, first, last, email, password string) error {
	hasSignedUp, err := store.GetBool(ctx, m.prefs, keyHasSignedUp)
	if err != nil {
		return err
	}
	if hasSignedUp {
		m.Notify("An account already exists.", BannerError)
		return ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := m.creds.Put(ctx, email, string(hash)); err != nil {
		return err
	}
	if err := m.prefs.Set(ctx, keyUserEmail, email); err != nil {
		return err
	}
	if err := m.prefs.Set(ctx, keyFirstName, first); err != nil {
		return err
	}
	if err := m.prefs.Set(ctx, keyLastName, last); err != nil {
		return err
	}
	if err := store.SetBool(ctx, m.prefs, keyHasSignedUp, true); err != nil {
		return err
	}

	m.mu.Lock()
	m.state.User = newProfile(first, last, email)
	m.state.LoggedIn = true
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)

	log.Info().Str("email", email).Msg("Account created")
	m.Notify("Account created", BannerSuccess)
	return nil
}

// Login authenticates against the persisted account. The email must match
// the persisted one and the password must verify against the stored secret.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	hasSignedUp, err := store.GetBool(ctx, m.prefs, keyHasSignedUp)
	if err != nil {
		return err
	}
	storedEmail, err := store.GetString(ctx, m.prefs, keyUserEmail)
	if err != nil {
		return err
	}
	if !hasSignedUp || email != storedEmail {
		m.Notify("No account found.", BannerError)
		return ErrAccountNotFound
	}

	secret, err := m.creds.Get(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			m.Notify("Invalid credentials.", BannerError)
			return ErrInvalidCredentials
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) != nil {
		log.Warn().Str("email", email).Msg("Failed login attempt")
		m.Notify("Invalid credentials.", BannerError)
		return ErrInvalidCredentials
	}

	first, _ := store.GetString(ctx, m.prefs, keyFirstName)
	last, _ := store.GetString(ctx, m.prefs, keyLastName)

	m.mu.Lock()
	m.state.User = newProfile(first, last, email)
	m.state.LoggedIn = true
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)

	log.Info().Str("email", email).Msg("Logged in")
	m.Notify("Logged in", BannerSuccess)
	return nil
}

// Logout resets the in-memory session unconditionally and idempotently. The
// persisted account and its credential remain registered.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.state.LoggedIn = false
	m.state.Destination = DestinationSearch
	m.state.User = models.EmptyUser()
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)
}

// UpdateProfile overwrites the in-memory profile wholesale with the staged
// settings-form values. Changes are not written back to the stores: login
// and bootstrap keep using the originally persisted identity.
func (m *Manager) UpdateProfile(patch models.User) {
	m.mu.Lock()
	m.state.User = patch
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)
	m.Notify("Profile updated", BannerSuccess)
}

// SetDestination switches the active top-level view.
func (m *Manager) SetDestination(d Destination) {
	m.mu.Lock()
	m.state.Destination = d
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)
}

// Notify shows a banner that auto-hides after DefaultBannerDuration.
func (m *Manager) Notify(message string, kind BannerKind) {
	m.NotifyFor(message, kind, DefaultBannerDuration)
}

// NotifyFor shows a banner that auto-hides after d. A pending hide timer is
// cancelled and replaced, so a superseded notification can never clear a
// newer banner early.
func (m *Manager) NotifyFor(message string, kind BannerKind, d time.Duration) {
	m.mu.Lock()
	if m.hideTimer != nil {
		m.hideTimer.Stop()
	}
	m.state.Banner = Banner{Message: message, Kind: kind, Visible: true}
	m.hideTimer = time.AfterFunc(d, m.hideBanner)
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)
}

func (m *Manager) hideBanner() {
	m.mu.Lock()
	if !m.state.Banner.Visible {
		m.mu.Unlock()
		return
	}
	m.state.Banner.Visible = false
	snap := m.state
	m.mu.Unlock()
	m.publish(snap)
}

func (m *Manager) publish(snap State) {
	m.mu.Lock()
	subs := make([]func(State), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func newProfile(first, last, email string) models.User {
	return models.User{
		FirstName:     first,
		LastName:      last,
		Email:         email,
		PlanType:      planType,
		MemberID:      memberID,
		GroupID:       groupID,
		PlanEffective: time.Now(),
	}
}
