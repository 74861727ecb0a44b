// Package anim is a registry of named, independently running interpolations.
//
// Core abstraction is the Registry, a shared map from string key to one
// running interpolation (from, to, duration, easing curve). A render path
// reads current values every frame via Get/Get01; a periodic Driver tick
// calls Sweep to evict finished entries.
//
// Design principles:
//   - Non-blocking: no operation suspends, readers never wait on the tick
//   - Restart semantics: Start on an existing key replaces it wholesale
//   - Two-phase eviction: a completed entry survives one full sweep cycle
//     so readers on the completion tick still observe the terminal value
//   - Namespacing: Context prefixes keys so independent callers cannot
//     collide on short local names
//
// Usage pattern:
//
//	reg := anim.NewRegistry()
//	drv := anim.NewDriver(reg, 0) // sweeps at the default 20 Hz cadence
//	drv.Start()
//	defer drv.Stop()
//
//	ui, _ := anim.NewContext(reg, "shop")
//	ui.Start("open", 0, 1, 300*time.Millisecond, anim.EaseOut)
//
//	// every frame
//	alpha := ui.Get01("open")
package anim
