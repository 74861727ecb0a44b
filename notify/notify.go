// Package notify renders transient overlay notifications for a terminal
// client. Lifetimes are counted in host ticks; fade in/out runs through
// the shared animation registry so the render path just reads an alpha.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/termfx/anim"
)

// Severity defines message type for styling
type Severity uint8

const (
	Info    Severity = iota // Default, neutral
	Success                 // Green, positive
	Warning                 // Yellow, caution
	Error                   // Red, failure
)

// Position specifies where notifications stack on screen
type Position uint8

const (
	BottomRight Position = iota
	BottomLeft
	TopRight
	TopLeft
	Bottom // Full-width bar at bottom
	Top    // Full-width bar at top
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Icons per severity level
var Icons = map[Severity]rune{
	Info:    'ℹ',
	Success: '✓',
	Warning: '⚠',
	Error:   '✗',
}

// Colors default colors per severity
var Colors = map[Severity]struct{ Fg, Bg, Icon RGB }{
	Info: {
		Fg:   RGB{R: 200, G: 200, B: 200},
		Bg:   RGB{R: 40, G: 40, B: 50},
		Icon: RGB{R: 100, G: 150, B: 255},
	},
	Success: {
		Fg:   RGB{R: 220, G: 255, B: 220},
		Bg:   RGB{R: 30, G: 60, B: 30},
		Icon: RGB{R: 80, G: 220, B: 80},
	},
	Warning: {
		Fg:   RGB{R: 255, G: 240, B: 200},
		Bg:   RGB{R: 60, G: 50, B: 20},
		Icon: RGB{R: 255, G: 200, B: 60},
	},
	Error: {
		Fg:   RGB{R: 255, G: 220, B: 220},
		Bg:   RGB{R: 60, G: 25, B: 25},
		Icon: RGB{R: 255, G: 80, B: 80},
	},
}

// Options configures a Manager
type Options struct {
	Position   Position
	MaxVisible int           // Stacked notifications shown at once, 0 = 5
	DefaultTTL int           // Lifetime in ticks when Post gets ttl 0, 0 = 80
	FadeIn     time.Duration // 0 = 150ms
	FadeOut    time.Duration // 0 = 250ms
	Backdrop   RGB           // Color faded toward, default near-black
	ShowIcon   bool
	MarginX    int
	MarginY    int
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		Position:   BottomRight,
		MaxVisible: 5,
		DefaultTTL: 80, // 4s at the 20Hz tick
		FadeIn:     150 * time.Millisecond,
		FadeOut:    250 * time.Millisecond,
		Backdrop:   RGB{R: 10, G: 10, B: 15},
		ShowIcon:   true,
		MarginX:    2,
		MarginY:    1,
	}
}

// notification is one queued message
type notification struct {
	id       uint64
	message  string
	severity Severity
	ttl      int // Remaining ticks before fade-out, -1 = persistent
	fading   bool
}

// Manager owns the notification queue
// Post/Dismiss may be called from any goroutine; Tick runs on the host
// tick (typically via anim.Driver.OnTick) and Render on the render path
type Manager struct {
	mu     sync.Mutex
	ctx    *anim.Context
	opts   Options
	items  []*notification
	nextID uint64
}

// NewManager creates a manager animating fades through reg under the
// given namespace. Namespace rules follow anim.NewContext
func NewManager(reg *anim.Registry, namespace string, opts Options) (*Manager, error) {
	ctx, err := anim.NewContext(reg, namespace)
	if err != nil {
		return nil, err
	}
	if opts.MaxVisible <= 0 {
		opts.MaxVisible = 5
	}
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = 80
	}
	if opts.FadeIn <= 0 {
		opts.FadeIn = 150 * time.Millisecond
	}
	if opts.FadeOut <= 0 {
		opts.FadeOut = 250 * time.Millisecond
	}
	return &Manager{ctx: ctx, opts: opts}, nil
}

// Post queues a notification and returns its id
// ttl is the lifetime in ticks; 0 selects the default, -1 is persistent
// until Dismiss
func (m *Manager) Post(message string, severity Severity, ttl int) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	if ttl == 0 {
		ttl = m.opts.DefaultTTL
	}
	m.items = append(m.items, &notification{
		id:       id,
		message:  message,
		severity: severity,
		ttl:      ttl,
	})
	m.ctx.Start(fadeInKey(id), 0, 1, m.opts.FadeIn, anim.EaseOut)
	return id
}

// Dismiss starts the fade-out for id ahead of its TTL
// No-op for unknown ids
func (m *Manager) Dismiss(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.items {
		if n.id == id {
			m.startFade(n)
			return
		}
	}
}

// DismissAll fades out everything currently queued
func (m *Manager) DismissAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.items {
		m.startFade(n)
	}
}

// Count returns the number of queued notifications, fading included
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Tick advances TTLs and reaps finished fades; call once per host tick
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.items[:0]
	for _, n := range m.items {
		if n.fading {
			if !m.ctx.IsActive(fadeOutKey(n.id)) {
				// Fade finished; drop the entry and its animation keys
				m.ctx.Cancel(fadeInKey(n.id))
				m.ctx.Cancel(fadeOutKey(n.id))
				continue
			}
			kept = append(kept, n)
			continue
		}
		if n.ttl > 0 {
			n.ttl--
			if n.ttl == 0 {
				m.startFade(n)
			}
		}
		kept = append(kept, n)
	}
	m.items = kept
}

// startFade transitions a notification to fading; caller holds mu
func (m *Manager) startFade(n *notification) {
	if n.fading {
		return
	}
	from := m.alphaLocked(n)
	n.fading = true
	m.ctx.Start(fadeOutKey(n.id), from, 0, m.opts.FadeOut, anim.EaseIn)
}

// alphaLocked returns the current opacity for n; caller holds mu
// A missing fade-in key means the fade-in already swept: fully opaque
func (m *Manager) alphaLocked(n *notification) float64 {
	if n.fading {
		return m.ctx.Get(fadeOutKey(n.id), 0)
	}
	if m.ctx.Exists(fadeInKey(n.id)) {
		return m.ctx.Get01(fadeInKey(n.id))
	}
	return 1
}

func fadeInKey(id uint64) string {
	return fmt.Sprintf("in/%d", id)
}

func fadeOutKey(id uint64) string {
	return fmt.Sprintf("out/%d", id)
}

// ChatLine formats a chat-style notification line with the severity icon
// and a bracketed channel prefix
func ChatLine(channel, from, message string, severity Severity) string {
	icon := Icons[severity]
	if from == "" {
		return fmt.Sprintf("%c [%s] %s", icon, channel, message)
	}
	return fmt.Sprintf("%c [%s] %s: %s", icon, channel, from, message)
}
