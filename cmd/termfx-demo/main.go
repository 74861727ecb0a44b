// Interactive sandbox exercising the library surfaces together:
// animated progress, notifications, sound presets and screen shake.
//
//	n  post a notification and restart the progress bar
//	s  shake the screen with an error buzz
//	b  ring the bell
//	q  quit
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termfx/anim"
	"github.com/lixenwraith/termfx/format"
	"github.com/lixenwraith/termfx/notify"
	"github.com/lixenwraith/termfx/shake"
	"github.com/lixenwraith/termfx/sound"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "termfx-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	reg := anim.NewRegistry()
	notifier, err := notify.NewManager(reg, "notify", notify.DefaultOptions())
	if err != nil {
		return err
	}
	ui, err := anim.NewContext(reg, "demo")
	if err != nil {
		return err
	}
	shaker := shake.NewShaker()

	cfg, err := sound.LoadConfig(os.Getenv("TERMFX_SOUND_CONFIG"))
	if err != nil {
		return err
	}
	sounds := sound.NewManager(cfg)
	if err := sounds.Initialize(); err != nil {
		// No audio device is fine, the demo runs silent
		sounds.SetEnabled(false)
	}
	defer sounds.Cleanup()

	driver := anim.NewDriver(reg, 0)
	driver.OnTick(notifier.Tick)
	driver.Start()
	defer driver.Stop()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(50 * time.Millisecond)
	defer frame.Stop()

	start := time.Now()
	var posts int64

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
				switch ev.Rune() {
				case 'n':
					posts++
					notifier.Post(fmt.Sprintf("notification #%s posted", format.Commas(posts)), notify.Success, 0)
					ui.Start("bar", 0, 1, 2*time.Second, anim.EaseOut)
					sounds.Click()
				case 's':
					shaker.Trigger(2, 400*time.Millisecond)
					notifier.Post("impact!", notify.Error, 40)
					sounds.Error()
				case 'b':
					sounds.Bell()
					notifier.Post(notify.ChatLine("system", "", "ding", notify.Info), notify.Info, 0)
				}
			}
		case <-frame.C:
			render(screen, ui, notifier, shaker, start, posts)
		}
	}
}

func render(screen tcell.Screen, ui *anim.Context, notifier *notify.Manager, shaker *shake.Shaker, start time.Time, posts int64) {
	screen.Clear()
	w, _ := screen.Size()
	dx, dy := shaker.Offset()

	// Idle pulse restarts itself when the previous cycle finishes
	if !ui.IsActive("pulse") {
		ui.Start("pulse", 0.3, 1, 1200*time.Millisecond, anim.EaseInOutSine)
	}
	pulse := ui.Get01("pulse")
	pulseColor := tcell.NewRGBColor(int32(80+120*pulse), int32(140*pulse), 220)
	title := tcell.StyleDefault.Foreground(pulseColor).Bold(true)
	drawText(screen, 2+dx, 1+dy, "termfx demo  [n]otify  [s]hake  [b]ell  [q]uit", title)

	status := fmt.Sprintf("uptime %s  posts %s  queue %s",
		format.Duration(time.Since(start)),
		format.Count(posts),
		format.Percent(float64(notifier.Count())/10))
	drawText(screen, 2+dx, 3+dy, status, tcell.StyleDefault)

	// Progress bar driven by the registry; absent key reads as zero
	barWidth := w - 4
	if barWidth > 40 {
		barWidth = 40
	}
	progress := ui.Get01("bar")
	filled := int(float64(barWidth) * progress)
	barStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		screen.SetContent(2+dx+i, 5+dy, ch, nil, barStyle)
	}

	notifier.Render(screen)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
