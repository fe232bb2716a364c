package services

import (
	"context"
	"time"

	"github.com/dayaniravi123/meduber/internal/session"
	"github.com/dayaniravi123/meduber/internal/store"
)

// Preference keys used by the directory detail screens to remember the
// member's chosen provider. Plain passthrough string storage.
const (
	keySelectedDoctor = "selectedDoctorName"
	keySelectedClinic = "selectedClinicName"
)

// Confirmation banners on the detail screens stay up longer than the
// default auth banners.
const selectionBannerDuration = 3 * time.Second

// SelectionServiceProvider defines the interface for provider selections.
type SelectionServiceProvider interface {
	SelectDoctor(ctx context.Context, name string) error
	SelectedDoctor(ctx context.Context) (string, error)
	SelectClinic(ctx context.Context, name string) error
	SelectedClinic(ctx context.Context) (string, error)
}

// SelectionService stores the member's chosen doctor/clinic through the
// preference store and surfaces the confirmation banner.
type SelectionService struct {
	prefs   store.KeyValueStore
	session *session.Manager
	events  EventServiceProvider
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(prefs store.KeyValueStore, sess *session.Manager, events EventServiceProvider) *SelectionService {
	return &SelectionService{prefs: prefs, session: sess, events: events}
}

// SelectDoctor remembers the chosen doctor and shows the confirmation banner.
func (s *SelectionService) SelectDoctor(ctx context.Context, name string) error {
	if err := s.prefs.Set(ctx, keySelectedDoctor, name); err != nil {
		return err
	}
	s.session.NotifyFor("This doctor is selected!", session.BannerSuccess, selectionBannerDuration)
	if err := s.events.CreateEvent("directory.doctor.selected", "info", "Selected doctor: "+name, nil); err != nil {
		return err
	}
	return nil
}

// SelectedDoctor returns the remembered doctor name, empty when none is set.
func (s *SelectionService) SelectedDoctor(ctx context.Context) (string, error) {
	return store.GetString(ctx, s.prefs, keySelectedDoctor)
}

// SelectClinic remembers the chosen clinic and shows the confirmation banner.
func (s *SelectionService) SelectClinic(ctx context.Context, name string) error {
	if err := s.prefs.Set(ctx, keySelectedClinic, name); err != nil {
		return err
	}
	s.session.NotifyFor("This clinic is selected!", session.BannerSuccess, selectionBannerDuration)
	if err := s.events.CreateEvent("directory.clinic.selected", "info", "Selected clinic: "+name, nil); err != nil {
		return err
	}
	return nil
}

// SelectedClinic returns the remembered clinic name, empty when none is set.
func (s *SelectionService) SelectedClinic(ctx context.Context) (string, error) {
	return store.GetString(ctx, s.prefs, keySelectedClinic)
}
