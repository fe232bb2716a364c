package monitoring

import (
	"testing"
	"time"

	"github.com/dayaniravi123/meduber/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	pruneCutoffs []time.Time
	pruned       int64
}

func (f *fakeEventService) CreateEvent(eventType, level, message string, actor *string) error {
	return nil
}

func (f *fakeEventService) GetRecentEvents(limit int) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventService) PruneEventsBefore(cutoff time.Time) (int64, error) {
	f.pruneCutoffs = append(f.pruneCutoffs, cutoff)
	return f.pruned, nil
}

func TestNewMaintenanceRejectsBadSchedule(t *testing.T) {
	_, err := NewMaintenance(&fakeEventService{}, "not a cron expr", 30)
	assert.Error(t, err)
}

func TestMaintenanceRunsWhenDue(t *testing.T) {
	events := &fakeEventService{pruned: 3}
	m, err := NewMaintenance(events, "* * * * *", 7)
	require.NoError(t, err)

	// Not due yet: nothing happens.
	m.nextRunAt = time.Now().Add(time.Hour)
	m.checkAndRun()
	assert.Empty(t, events.pruneCutoffs)

	// Due: the prune runs with a cutoff one retention period back, and the
	// next run is rescheduled into the future.
	m.nextRunAt = time.Now().Add(-time.Second)
	m.checkAndRun()
	require.Len(t, events.pruneCutoffs, 1)
	assert.WithinDuration(t, time.Now().Add(-7*24*time.Hour), events.pruneCutoffs[0], time.Minute)
	assert.True(t, m.nextRunAt.After(time.Now().Add(-time.Minute)))

	// Not due again until the schedule's next tick.
	m.checkAndRun()
	assert.Len(t, events.pruneCutoffs, 1)
}
