package simulator

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTickInterval is the pace of one simulated delivery.
const DefaultTickInterval = 1500 * time.Millisecond

// Observer is told about every delivery the driver bowls.
type Observer func(delivery Delivery, snapshot Snapshot)

// Driver is the clock for a single Match. At most one ticking goroutine
// exists per driver, which keeps the match single-writer.
type Driver struct {
	match    *Match
	interval time.Duration
	observer Observer
	logger   *logrus.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewDriver(match *Match, interval time.Duration, observer Observer, logger *logrus.Logger) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Driver{
		match:    match,
		interval: interval,
		observer: observer,
		logger:   logger,
	}
}

// Start begins or resumes the innings. Starting a running or completed match
// returns a *models.StateError and leaves the current clock untouched.
func (d *Driver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.match.Start(); err != nil {
		return err
	}
	// a previous loop may have exited on its own at completion
	d.stopLoopLocked()

	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(d.stop, d.done)
	return nil
}

// Pause halts the clock and the match.
func (d *Driver) Pause() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.match.Pause(); err != nil {
		return err
	}
	d.stopLoopLocked()
	return nil
}

// Reset halts the clock and zeroes the match.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLoopLocked()
	d.match.Reset()
}

// Stop halts the clock without touching match state. Used on shutdown.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLoopLocked()
}

func (d *Driver) Snapshot() Snapshot {
	return d.match.Snapshot()
}

func (d *Driver) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			delivery, ok := d.match.Tick()
			if !ok {
				return
			}
			snapshot := d.match.Snapshot()
			if d.observer != nil {
				d.observer(delivery, snapshot)
			}
			if snapshot.State == StateCompleted {
				d.logger.WithField("match_id", snapshot.MatchID).Debug("Simulation clock stopped at end of innings")
				return
			}
		}
	}
}

func (d *Driver) stopLoopLocked() {
	if d.stop == nil {
		return
	}
	close(d.stop)
	<-d.done
	d.stop = nil
	d.done = nil
}
