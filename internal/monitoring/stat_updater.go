package monitoring

import (
	"sync"
	"time"

	ws "github.com/dayaniravi123/meduber/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats is a point-in-time snapshot of the host the service runs on,
// shown on the health endpoint and streamed to connected clients.
type HostStats struct {
	CPUPercent    float64   `json:"cpuPercent"`
	MemoryPercent float64   `json:"memoryPercent"`
	MemoryUsedMB  uint64    `json:"memoryUsedMb"`
	UptimeSeconds uint64    `json:"uptimeSeconds"`
	CollectedAt   time.Time `json:"collectedAt"`
}

// StatUpdater periodically samples host stats and broadcasts them.
type StatUpdater struct {
	hub    *ws.Hub
	ticker *time.Ticker
	done   chan bool

	mu     sync.RWMutex
	latest HostStats
}

// NewStatUpdater creates a new StatUpdater.
func NewStatUpdater(hub *ws.Hub) *StatUpdater {
	return &StatUpdater{
		hub:  hub,
		done: make(chan bool),
	}
}

// Run starts the periodic updates.
func (su *StatUpdater) Run() {
	log.Info().Msg("Starting background stat updater...")
	su.ticker = time.NewTicker(15 * time.Second)
	defer su.ticker.Stop()

	// Run once immediately on start
	su.collect()

	for {
		select {
		case <-su.done:
			log.Info().Msg("Stopping background stat updater.")
			return
		case <-su.ticker.C:
			su.collect()
		}
	}
}

// Stop halts the updater.
func (su *StatUpdater) Stop() {
	su.done <- true
}

// Latest returns the most recently collected snapshot.
func (su *StatUpdater) Latest() HostStats {
	su.mu.RLock()
	defer su.mu.RUnlock()
	return su.latest
}

func (su *StatUpdater) collect() {
	stats := HostStats{CollectedAt: time.Now()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	if uptime, err := host.Uptime(); err == nil {
		stats.UptimeSeconds = uptime
	}

	su.mu.Lock()
	su.latest = stats
	su.mu.Unlock()

	su.hub.BroadcastMessage("system.stats", stats)
}
