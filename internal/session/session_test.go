package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/dayaniravi123/meduber/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *store.MemoryCredentialStore, *store.MemoryKeyValueStore) {
	creds := store.NewMemoryCredentialStore()
	prefs := store.NewMemoryKeyValueStore()
	return NewManager(creds, prefs), creds, prefs
}

func TestInitialStateIsLoggedOut(t *testing.T) {
	m, _, _ := newTestManager()

	snap := m.Snapshot()
	assert.False(t, snap.LoggedIn)
	assert.Equal(t, DestinationSearch, snap.Destination)
	assert.True(t, snap.User.IsEmpty())
	assert.False(t, snap.Banner.Visible)
}

func TestSignupSuccess(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	err := m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1")
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "Jane", snap.User.FirstName)
	assert.Equal(t, "Doe", snap.User.LastName)
	assert.Equal(t, "jane@x.com", snap.User.Email)
	assert.Equal(t, "NYSHIP", snap.User.PlanType)
	assert.Equal(t, "W1440432200", snap.User.MemberID)
	assert.Equal(t, "22652", snap.User.GroupID)
	assert.True(t, snap.Banner.Visible)
	assert.Equal(t, BannerSuccess, snap.Banner.Kind)
}

func TestSignupDuplicateAccountRejected(t *testing.T) {
	m, _, prefs := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	m.Logout()

	// A second signup fails even with a different email.
	err := m.Signup(ctx, "John", "Roe", "john@x.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	snap := m.Snapshot()
	assert.False(t, snap.LoggedIn, "failed signup must not log in")
	assert.Equal(t, BannerError, snap.Banner.Kind)

	// Persisted account data is untouched.
	email, err := prefs.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", email)
	first, err := prefs.Get(ctx, "firstName")
	require.NoError(t, err)
	assert.Equal(t, "Jane", first)
}

func TestLoginScenario(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	assert.True(t, m.Snapshot().LoggedIn)

	m.Logout()
	assert.False(t, m.Snapshot().LoggedIn)

	err := m.Login(ctx, "jane@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, m.Snapshot().LoggedIn)

	err = m.Login(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)

	snap := m.Snapshot()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "Jane", snap.User.FirstName)
}

func TestLoginUnknownEmail(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	// No signup at all.
	err := m.Login(ctx, "jane@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.False(t, m.Snapshot().LoggedIn)

	// Signed up, but a different email. The password being correct for the
	// real account changes nothing.
	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	m.Logout()
	err = m.Login(ctx, "other@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.False(t, m.Snapshot().LoggedIn)
}

func TestLoginReconstructsSignupProfile(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "A", "B", "a@x.com", "pw"))
	created := m.Snapshot().User

	m.Logout()
	require.NoError(t, m.Login(ctx, "a@x.com", "pw"))

	got := m.Snapshot().User
	assert.Equal(t, created.FirstName, got.FirstName)
	assert.Equal(t, created.LastName, got.LastName)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.PlanType, got.PlanType)
	assert.Equal(t, created.MemberID, got.MemberID)
	assert.Equal(t, created.GroupID, got.GroupID)
}

func TestLogoutIsIdempotent(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	m.SetDestination(DestinationDashboard)

	m.Logout()
	first := m.Snapshot()
	m.Logout()
	second := m.Snapshot()

	assert.False(t, first.LoggedIn)
	assert.Equal(t, DestinationSearch, first.Destination)
	assert.True(t, first.User.IsEmpty())

	assert.Equal(t, first.LoggedIn, second.LoggedIn)
	assert.Equal(t, first.Destination, second.Destination)
	assert.Equal(t, first.User.IsEmpty(), second.User.IsEmpty())
}

func TestLogoutKeepsAccountRegistered(t *testing.T) {
	m, creds, prefs := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	m.Logout()

	_, err := creds.Get(ctx, "jane@x.com")
	assert.NoError(t, err, "credential survives logout")

	flag, err := store.GetBool(ctx, prefs, "hasSignedUp")
	require.NoError(t, err)
	assert.True(t, flag, "signup flag survives logout")

	require.NoError(t, m.Login(ctx, "jane@x.com", "secret1"))
	assert.True(t, m.Snapshot().LoggedIn)
}

func TestBootstrapRoundTrip(t *testing.T) {
	creds := store.NewMemoryCredentialStore()
	prefs := store.NewMemoryKeyValueStore()
	ctx := context.Background()

	m := NewManager(creds, prefs)
	require.NoError(t, m.Signup(ctx, "A", "B", "a@x.com", "pw"))

	// A new manager over the same stores stands in for a process restart.
	restarted := NewManager(creds, prefs)
	restarted.Bootstrap(ctx)

	snap := restarted.Snapshot()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "A", snap.User.FirstName)
	assert.Equal(t, "B", snap.User.LastName)
	assert.Equal(t, "a@x.com", snap.User.Email)
	assert.Equal(t, "NYSHIP", snap.User.PlanType)
}

func TestBootstrapWithoutAccount(t *testing.T) {
	m, _, _ := newTestManager()
	m.Bootstrap(context.Background())

	snap := m.Snapshot()
	assert.False(t, snap.LoggedIn)
	assert.True(t, snap.User.IsEmpty())
}

func TestUpdateProfileDoesNotRepersist(t *testing.T) {
	m, _, prefs := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))

	patch := m.Snapshot().User
	patch.FirstName = "Janet"
	patch.Email = "janet@x.com"
	m.UpdateProfile(patch)

	snap := m.Snapshot()
	assert.Equal(t, "Janet", snap.User.FirstName)
	assert.Equal(t, "janet@x.com", snap.User.Email)

	// The stores still hold the original identity: login and bootstrap use
	// the persisted email, not the edited one.
	email, err := prefs.Get(ctx, "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", email)

	m.Logout()
	assert.ErrorIs(t, m.Login(ctx, "janet@x.com", "secret1"), ErrAccountNotFound)
	require.NoError(t, m.Login(ctx, "jane@x.com", "secret1"))
}

func TestNotifySupersededTimerIsCancelled(t *testing.T) {
	m, _, _ := newTestManager()

	m.NotifyFor("first", BannerSuccess, 50*time.Millisecond)
	m.NotifyFor("second", BannerSuccess, 500*time.Millisecond)

	// Past the first banner's deadline: the stale timer must not have
	// cleared the newer banner.
	time.Sleep(150 * time.Millisecond)
	snap := m.Snapshot()
	assert.True(t, snap.Banner.Visible)
	assert.Equal(t, "second", snap.Banner.Message)

	time.Sleep(500 * time.Millisecond)
	assert.False(t, m.Snapshot().Banner.Visible)
}

func TestSubscribersReceiveSnapshots(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	// The banner hide timer publishes from its own goroutine, so the
	// recording subscriber needs its own lock.
	var mu sync.Mutex
	var states []State
	m.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))
	m.Logout()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, states)
	// Signup publishes a logged-in snapshot before the banner update.
	assert.True(t, states[0].LoggedIn)
	last := states[len(states)-1]
	assert.False(t, last.LoggedIn)
	assert.True(t, last.User.IsEmpty())
}

func TestUpdateProfileOverwritesWholesale(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	require.NoError(t, m.Signup(ctx, "Jane", "Doe", "jane@x.com", "secret1"))

	m.UpdateProfile(models.User{FirstName: "Only"})
	snap := m.Snapshot()
	assert.Equal(t, "Only", snap.User.FirstName)
	assert.Empty(t, snap.User.LastName, "wholesale overwrite clears unset fields")
	assert.Empty(t, snap.User.PlanType)
	assert.True(t, snap.Banner.Visible)
	assert.Equal(t, "Profile updated", snap.Banner.Message)
}
