package anim

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval matches the ~20 Hz host frame cadence
const DefaultTickInterval = 50 * time.Millisecond

// Driver runs the registry sweep on a fixed tick
// The tick fires unconditionally, independent of any visible UI state,
// so cleanup keeps pace with creation even when nothing is rendering
type Driver struct {
	reg          *Registry
	tickInterval time.Duration

	// onTick hooks run after each sweep; registered before Start
	onTick []func()

	tickCount atomic.Uint64
	running   atomic.Bool
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewDriver creates a driver sweeping reg every interval
// A non-positive interval selects DefaultTickInterval
func NewDriver(reg *Registry, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Driver{
		reg:          reg,
		tickInterval: interval,
		stopChan:     make(chan struct{}),
	}
}

// OnTick registers fn to run after each sweep
// Must be called before Start; hooks let periodic helpers (notification
// TTLs, shake decay) share the one driving signal
func (d *Driver) OnTick(fn func()) {
	d.onTick = append(d.onTick, fn)
}

// Start begins the tick loop
// The driver is one-shot: once stopped it never starts again
func (d *Driver) Start() {
	select {
	case <-d.stopChan:
		return
	default:
	}
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.loop()
	}
}

// Stop halts the tick loop and waits for it to exit
// Only a running driver consumes the stop; calling before Start leaves
// a later Start/Stop cycle intact
func (d *Driver) Stop() {
	if d.running.CompareAndSwap(true, false) {
		d.stopOnce.Do(func() {
			close(d.stopChan)
		})
		d.wg.Wait()
	}
}

// Ticks returns the number of completed ticks
func (d *Driver) Ticks() uint64 {
	return d.tickCount.Load()
}

// loop sweeps on a drift-corrected deadline
func (d *Driver) loop() {
	defer d.wg.Done()

	next := time.Now().Add(d.tickInterval)
	timer := time.NewTimer(d.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case <-timer.C:
		}

		d.reg.Sweep()
		for _, fn := range d.onTick {
			fn()
		}
		d.tickCount.Add(1)

		next = next.Add(d.tickInterval)
		sleep := time.Until(next)
		if sleep < 0 {
			// Fell behind a full tick, resync instead of bursting
			next = time.Now().Add(d.tickInterval)
			sleep = d.tickInterval
		}
		timer.Reset(sleep)
	}
}
