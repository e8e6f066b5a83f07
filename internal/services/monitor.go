package services

import (
	"context"
	"sync"
	"time"

	"github.com/mapplock/mapplock/internal/domain"
	"github.com/mapplock/mapplock/internal/logging"
	"github.com/mapplock/mapplock/internal/ports"
)

// DefaultMonitorInterval is how often device activity is polled
const DefaultMonitorInterval = 2 * time.Second

// ViolationSink receives violations detected by the monitor
type ViolationSink interface {
	ReportViolation(ctx context.Context, in domain.ViolationInput) (domain.Violation, error)
}

// ViolationMonitor polls device activity while the kiosk is active and
// reports anything the configuration forbids
type ViolationMonitor struct {
	cfg      domain.SessionConfiguration
	interval time.Duration
	sink     ViolationSink
	source   ports.ActivitySource

	mu     sync.Mutex
	paused bool
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewViolationMonitor creates a monitor for one session configuration
func NewViolationMonitor(
	source ports.ActivitySource,
	sink ViolationSink,
	cfg domain.SessionConfiguration,
	interval time.Duration,
) *ViolationMonitor {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	return &ViolationMonitor{
		cfg:      cfg,
		interval: interval,
		sink:     sink,
		source:   source,
		stopCh:   make(chan struct{}),
	}
}

// Start begins monitoring in the background
func (m *ViolationMonitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.monitorLoop(ctx)
}

// Stop halts monitoring and waits for the loop to exit
func (m *ViolationMonitor) Stop() {
	m.mu.Lock()
	select {
	case <-m.stopCh:
	default:
		close(m.stopCh)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// Pause suspends polling without stopping the loop
func (m *ViolationMonitor) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
}

// Resume continues polling after Pause
func (m *ViolationMonitor) Resume() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
}

func (m *ViolationMonitor) isPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *ViolationMonitor) monitorLoop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.isPaused() {
				continue
			}
			m.CheckOnce(ctx)
		}
	}
}

// CheckOnce polls the activity source a single time and reports every
// event that classifies as a violation. It returns how many were reported.
func (m *ViolationMonitor) CheckOnce(ctx context.Context) int {
	events, err := m.source.Poll(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to poll device activity", "error", err)
		return 0
	}

	reported := 0
	for _, event := range events {
		in, ok := domain.ClassifyActivity(m.cfg, event)
		if !ok {
			continue
		}
		if _, err := m.sink.ReportViolation(ctx, in); err != nil {
			logging.Logger.Warn("Failed to report detected violation", "error", err, "type", in.Type)
			continue
		}
		reported++
	}
	return reported
}
