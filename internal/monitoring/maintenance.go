package monitoring

import (
	"time"

	"github.com/dayaniravi123/meduber/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Maintenance runs the recurring housekeeping job that prunes old events,
// on a standard cron schedule from the configuration.
type Maintenance struct {
	eventSvc  services.EventServiceProvider
	schedule  cron.Schedule
	retention time.Duration
	ticker    *time.Ticker
	done      chan bool
	nextRunAt time.Time
}

// NewMaintenance creates the maintenance job. The schedule expression is
// validated here so a bad configuration fails at startup, not silently.
func NewMaintenance(eventSvc services.EventServiceProvider, cronExpr string, retentionDays int) (*Maintenance, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &Maintenance{
		eventSvc:  eventSvc,
		schedule:  schedule,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		done:      make(chan bool),
		nextRunAt: schedule.Next(time.Now()),
	}, nil
}

// Run starts the maintenance ticking loop.
func (m *Maintenance) Run() {
	log.Info().Time("next_run", m.nextRunAt).Msg("Starting maintenance scheduler...")
	m.ticker = time.NewTicker(1 * time.Minute)
	defer m.ticker.Stop()

	for {
		select {
		case <-m.done:
			log.Info().Msg("Stopping maintenance scheduler.")
			return
		case <-m.ticker.C:
			m.checkAndRun()
		}
	}
}

// Stop halts the scheduler.
func (m *Maintenance) Stop() {
	m.done <- true
}

func (m *Maintenance) checkAndRun() {
	now := time.Now()
	if now.Before(m.nextRunAt) {
		return
	}
	m.nextRunAt = m.schedule.Next(now)

	cutoff := now.Add(-m.retention)
	pruned, err := m.eventSvc.PruneEventsBefore(cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Maintenance: failed to prune old events")
		return
	}
	log.Info().Int64("pruned", pruned).Time("cutoff", cutoff).Msg("Maintenance: pruned old events")
}
