package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/termfx/anim"
)

// fastOptions keeps fades short enough for wall-clock tests
func fastOptions() Options {
	opts := DefaultOptions()
	opts.FadeIn = time.Millisecond
	opts.FadeOut = time.Millisecond
	return opts
}

func TestNewManagerValidatesNamespace(t *testing.T) {
	reg := anim.NewRegistry()
	if _, err := NewManager(reg, "bad:ns", DefaultOptions()); err == nil {
		t.Error("namespace containing separator accepted")
	}
	if _, err := NewManager(reg, "notify", DefaultOptions()); err != nil {
		t.Errorf("valid namespace rejected: %v", err)
	}
}

func TestPostAndCount(t *testing.T) {
	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())

	id1 := m.Post("first", Info, 10)
	id2 := m.Post("second", Error, 10)
	if id1 == id2 {
		t.Error("Post returned duplicate ids")
	}
	if got := m.Count(); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

// TestTTLExpiry walks a notification through its tick lifetime: alive
// for ttl ticks, then fading, then gone
func TestTTLExpiry(t *testing.T) {
	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())

	m.Post("bye", Info, 2)

	m.Tick()
	if got := m.Count(); got != 1 {
		t.Fatalf("Count after tick 1 = %d, want 1", got)
	}
	m.Tick() // TTL hits zero, fade-out starts

	// Wait out the 1ms fade, then the next tick reaps it
	time.Sleep(10 * time.Millisecond)
	m.Tick()
	if got := m.Count(); got != 0 {
		t.Errorf("Count after fade = %d, want 0", got)
	}
}

func TestPersistentUntilDismiss(t *testing.T) {
	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())

	id := m.Post("sticky", Warning, -1)
	for i := 0; i < 50; i++ {
		m.Tick()
	}
	if got := m.Count(); got != 1 {
		t.Fatalf("persistent notification expired: Count = %d", got)
	}

	m.Dismiss(id)
	time.Sleep(10 * time.Millisecond)
	m.Tick()
	if got := m.Count(); got != 0 {
		t.Errorf("Count after dismiss = %d, want 0", got)
	}
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())
	m.Dismiss(999)
}

// TestFadeKeysStayNamespaced verifies the manager's animation traffic
// cannot collide with other registry users
func TestFadeKeysStayNamespaced(t *testing.T) {
	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())
	reg.Start("in/1", 5, 6, time.Second, anim.Linear)

	m.Post("hello", Info, 10)

	if !reg.Exists("notify:in/1") {
		t.Error("fade-in key not under the notify namespace")
	}
	if got := reg.Get("in/1", -1); got == -1 {
		t.Error("unprefixed key disappeared")
	}
}

func TestChatLine(t *testing.T) {
	got := ChatLine("guild", "ayla", "hello there", Info)
	want := "ℹ [guild] ayla: hello there"
	if got != want {
		t.Errorf("ChatLine = %q, want %q", got, want)
	}

	got = ChatLine("system", "", "server restart soon", Warning)
	want = "⚠ [system] server restart soon"
	if got != want {
		t.Errorf("ChatLine without sender = %q, want %q", got, want)
	}
}

func TestBlendEndpoints(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}
	backdrop := RGB{R: 10, G: 10, B: 15}

	full := Blend(c, backdrop, 1)
	r, g, b := full.RGB()
	if r != 200 || g != 100 || b != 50 {
		t.Errorf("Blend alpha 1 = (%d,%d,%d), want (200,100,50)", r, g, b)
	}

	gone := Blend(c, backdrop, 0)
	r, g, b = gone.RGB()
	if r != 10 || g != 10 || b != 15 {
		t.Errorf("Blend alpha 0 = (%d,%d,%d), want backdrop (10,10,15)", r, g, b)
	}
}

// TestRenderDrawsMessage renders onto a simulation screen and scans the
// cell grid for the posted text
func TestRenderDrawsMessage(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())
	m.Post("low on mana", Warning, 100)

	// Let the 1ms fade-in finish so the line is fully opaque
	time.Sleep(10 * time.Millisecond)

	m.Render(screen)
	screen.Show()

	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for i, cell := range cells {
		if len(cell.Runes) > 0 {
			sb.WriteRune(cell.Runes[0])
		}
		if (i+1)%w == 0 {
			sb.WriteRune('\n')
		}
	}
	if !strings.Contains(sb.String(), "low on mana") {
		t.Errorf("message not found in %dx%d screen contents", w, h)
	}
}

func TestRenderTinyScreenIsNoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(3, 1)

	reg := anim.NewRegistry()
	m, _ := NewManager(reg, "notify", fastOptions())
	m.Post("x", Info, 10)
	m.Render(screen) // must not panic on a screen too small to draw
}
