package anim

import (
	"strings"
	"sync"
	"time"
)

// Registry tracks named interpolations shared across a client
// Readers poll values every frame; the periodic Sweep evicts finished
// entries one full cycle after they complete
type Registry struct {
	mu    sync.RWMutex
	items map[string]*timedValue

	// now is the clock source; the monotonic reading carried by time.Time
	// keeps elapsed math immune to wall-clock adjustment
	now func() time.Time
}

// NewRegistry creates an empty registry
// One instance is shared process-wide; the host wires it to consumers
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*timedValue),
		now:   time.Now,
	}
}

// Start begins an interpolation at key, replacing any previous entry
// wholesale. Non-positive durations are clamped to 1ms. Always succeeds
func (r *Registry) Start(key string, from, to float64, duration time.Duration, easing Easing) {
	v := newTimedValue(r.now(), from, to, duration, easing)
	r.mu.Lock()
	r.items[key] = v
	r.mu.Unlock()
}

// Get returns the current value at key, or def when absent
// Never blocks beyond the map read; never changes registry membership
func (r *Registry) Get(key string, def float64) float64 {
	r.mu.RLock()
	v, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return def
	}
	return v.eval(r.now())
}

// Get01 returns the current value clamped to [0,1], 0 when absent
// Convenience for progress and alpha reads
func (r *Registry) Get01(key string) float64 {
	return Clamp01(r.Get(key, 0))
}

// IsActive reports whether key exists and has not yet completed
func (r *Registry) IsActive(key string) bool {
	r.mu.RLock()
	v, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return r.now().Sub(v.start) < v.duration
}

// Exists reports whether key is present, completed or not
func (r *Registry) Exists(key string) bool {
	r.mu.RLock()
	_, ok := r.items[key]
	r.mu.RUnlock()
	return ok
}

// Cancel removes key immediately regardless of phase; no-op when absent
func (r *Registry) Cancel(key string) {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
}

// CancelAll removes every entry
func (r *Registry) CancelAll() {
	r.mu.Lock()
	clear(r.items)
	r.mu.Unlock()
}

// cancelPrefix removes every key starting with prefix, serving Context
// CancelAll without exposing iteration to callers
func (r *Registry) cancelPrefix(prefix string) {
	r.mu.Lock()
	for k := range r.items {
		if strings.HasPrefix(k, prefix) {
			delete(r.items, k)
		}
	}
	r.mu.Unlock()
}

// Len returns the number of tracked entries, completed or not
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Sweep advances the cleanup state machine one pass
// An entry observed completed is marked on that pass and removed on the
// next, so a reader on the completion tick (or the one after) still sees
// the terminal value instead of the absent-key default. Every entry is
// evaluated each pass, otherwise unpolled entries would never transition
func (r *Registry) Sweep() {
	now := r.now()
	r.mu.Lock()
	for key, v := range r.items {
		if v.readyToRemove.Load() {
			delete(r.items, key)
			continue
		}
		v.eval(now)
		if v.completed.Load() {
			v.readyToRemove.Store(true)
		}
	}
	r.mu.Unlock()
}
