package services

import (
	"context"
	"testing"
	"time"

	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/dayaniravi123/meduber/internal/session"
	"github.com/dayaniravi123/meduber/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	created []string
}

func (f *fakeEventService) CreateEvent(eventType, level, message string, actor *string) error {
	f.created = append(f.created, eventType)
	return nil
}

func (f *fakeEventService) GetRecentEvents(limit int) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventService) PruneEventsBefore(cutoff time.Time) (int64, error) {
	return 0, nil
}

func newSelectionFixture() (*SelectionService, *store.MemoryKeyValueStore, *session.Manager, *fakeEventService) {
	prefs := store.NewMemoryKeyValueStore()
	sess := session.NewManager(store.NewMemoryCredentialStore(), prefs)
	events := &fakeEventService{}
	return NewSelectionService(prefs, sess, events), prefs, sess, events
}

func TestSelectDoctor(t *testing.T) {
	svc, prefs, sess, events := newSelectionFixture()
	ctx := context.Background()

	name, err := svc.SelectedDoctor(ctx)
	require.NoError(t, err)
	assert.Empty(t, name, "no selection yet")

	require.NoError(t, svc.SelectDoctor(ctx, "Dr. Jane Smith"))

	stored, err := prefs.Get(ctx, "selectedDoctorName")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Smith", stored)

	name, err = svc.SelectedDoctor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Smith", name)

	banner := sess.Snapshot().Banner
	assert.True(t, banner.Visible)
	assert.Equal(t, "This doctor is selected!", banner.Message)

	assert.Equal(t, []string{"directory.doctor.selected"}, events.created)
}

func TestSelectClinic(t *testing.T) {
	svc, prefs, sess, events := newSelectionFixture()
	ctx := context.Background()

	require.NoError(t, svc.SelectClinic(ctx, "Buffalo Heart Center"))

	stored, err := prefs.Get(ctx, "selectedClinicName")
	require.NoError(t, err)
	assert.Equal(t, "Buffalo Heart Center", stored)

	name, err := svc.SelectedClinic(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Buffalo Heart Center", name)

	banner := sess.Snapshot().Banner
	assert.True(t, banner.Visible)
	assert.Equal(t, "This clinic is selected!", banner.Message)

	assert.Equal(t, []string{"directory.clinic.selected"}, events.created)
}

func TestSelectionsAreIndependent(t *testing.T) {
	svc, _, _, _ := newSelectionFixture()
	ctx := context.Background()

	require.NoError(t, svc.SelectDoctor(ctx, "Dr. John Doe"))
	require.NoError(t, svc.SelectClinic(ctx, "UB Heart Institute"))

	doctor, err := svc.SelectedDoctor(ctx)
	require.NoError(t, err)
	clinic, err := svc.SelectedClinic(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Dr. John Doe", doctor)
	assert.Equal(t, "UB Heart Institute", clinic)
}
