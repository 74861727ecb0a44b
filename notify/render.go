package notify

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blend mixes c toward backdrop by alpha (1 = full c, 0 = backdrop)
// and converts to a tcell color. Terminal cells have no opacity, so the
// fade is simulated by blending in RGB space
func Blend(c, backdrop RGB, alpha float64) tcell.Color {
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(backdrop.R) / 255, G: float64(backdrop.G) / 255, B: float64(backdrop.B) / 255}
	mixed := b.BlendRgb(a, alpha).Clamped()
	return tcell.NewRGBColor(
		int32(mixed.R*255+0.5),
		int32(mixed.G*255+0.5),
		int32(mixed.B*255+0.5),
	)
}

// Render draws the notification stack onto screen
// Call on the render path every frame; alpha comes straight from the
// animation registry so motion needs no state here
func (m *Manager) Render(screen tcell.Screen) {
	w, h := screen.Size()
	if w < 5 || h < 1 {
		return
	}

	m.mu.Lock()
	items := make([]*notification, len(m.items))
	copy(items, m.items)
	opts := m.opts
	m.mu.Unlock()

	if len(items) > opts.MaxVisible {
		items = items[len(items)-opts.MaxVisible:]
	}

	for i, n := range items {
		m.mu.Lock()
		alpha := m.alphaLocked(n)
		m.mu.Unlock()
		if alpha <= 0 {
			continue
		}

		line := m.line(n, opts.ShowIcon)
		y := m.rowFor(i, len(items), h, opts)
		x, width := m.colFor(len(line), w, opts)
		m.drawLine(screen, x, y, width, line, n.severity, alpha, opts)
	}
}

// line assembles the rendered runes for one notification
func (m *Manager) line(n *notification, showIcon bool) []rune {
	msg := []rune(n.message)
	if !showIcon {
		return msg
	}
	out := make([]rune, 0, len(msg)+2)
	out = append(out, Icons[n.severity], ' ')
	return append(out, msg...)
}

// rowFor stacks notifications away from the anchored edge
func (m *Manager) rowFor(i, count, h int, opts Options) int {
	switch opts.Position {
	case TopLeft, TopRight, Top:
		return opts.MarginY + i
	default:
		return h - 1 - opts.MarginY - (count - 1 - i)
	}
}

// colFor returns the starting column and drawn width
func (m *Manager) colFor(lineLen, w int, opts Options) (int, int) {
	switch opts.Position {
	case Top, Bottom:
		return 0, w
	case TopLeft, BottomLeft:
		return opts.MarginX, lineLen + 2
	default:
		x := w - opts.MarginX - lineLen - 2
		if x < 0 {
			x = 0
		}
		return x, lineLen + 2
	}
}

func (m *Manager) drawLine(screen tcell.Screen, x, y, width int, line []rune, sev Severity, alpha float64, opts Options) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}

	colors := Colors[sev]
	bg := Blend(colors.Bg, opts.Backdrop, alpha)
	fg := Blend(colors.Fg, opts.Backdrop, alpha)
	iconFg := Blend(colors.Icon, opts.Backdrop, alpha)

	base := tcell.StyleDefault.Foreground(fg).Background(bg)
	iconStyle := tcell.StyleDefault.Foreground(iconFg).Background(bg).Bold(true)

	// Background pad
	for cx := x; cx < x+width && cx < w; cx++ {
		screen.SetContent(cx, y, ' ', nil, base)
	}

	// Content, one cell of padding
	cx := x + 1
	for i, ch := range line {
		if cx >= w || cx >= x+width-1 {
			break
		}
		style := base
		if opts.ShowIcon && i == 0 {
			style = iconStyle
		}
		screen.SetContent(cx, y, ch, nil, style)
		cx++
	}
}
