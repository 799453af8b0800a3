// Command termcaster renders the raycaster in a terminal using half-block characters.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"raycaster/internal/config"
	"raycaster/internal/engine"
	"raycaster/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

const statusRows = 1

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Log lines would scribble over the frame.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)

	cols, rows := screen.Size()
	w, h := terminal.FrameSize(cols, rows, statusRows)
	if w == 0 {
		return fmt.Errorf("terminal too small: %dx%d", cols, rows)
	}
	session, err := engine.NewSession(cfg, engine.Options{Width: w, Height: h})
	if err != nil {
		return err
	}
	defer session.Close()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, events, done)

	keys := terminal.NewKeyHold(time.Duration(cfg.Terminal.KeyHoldMs) * time.Millisecond)
	tick := time.NewTicker(time.Duration(cfg.GetTickDuration() * float64(time.Second)))
	defer tick.Stop()
	frame := time.NewTicker(time.Second / time.Duration(cfg.Terminal.FPS))
	defer frame.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(ev, time.Now()) {
				case terminal.ActionQuit:
					return nil
				case terminal.ActionToggleShading:
					session.ToggleShading()
				}
			case *tcell.EventResize:
				screen.Sync()
				cols, rows = screen.Size()
				if w, h := terminal.FrameSize(cols, rows, statusRows); w > 0 {
					if err := session.Resize(w, h); err != nil {
						return err
					}
				}
				screen.Clear()
			}
		case now := <-tick.C:
			session.Tick(keys.Active(now))
		case <-frame.C:
			draw(screen, session, cols, rows)
			session.LogAlerts(time.Now())
		}
	}
}

// eventSource is the part of tcell.Screen the event pump reads from.
type eventSource interface {
	PollEvent() tcell.Event
}

// pumpEvents forwards screen events until the screen is finalized or done is closed.
func pumpEvents(screen eventSource, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func draw(screen tcell.Screen, session *engine.Session, cols, rows int) {
	session.Monitor().ProfiledFunction("frame", func() {
		terminal.Present(screen, session.Render())
		drawStatus(screen, session, cols, rows)
		screen.Show()
	})
}

func drawStatus(screen tcell.Screen, session *engine.Session, cols, rows int) {
	st := session.Status()
	m := session.Metrics()
	line := fmt.Sprintf(" %.1f fps  pos %.2f,%.2f  %3.0f deg  %s  [wasd/arrows ,. tab q]",
		m.FramesPerSecond, st.X, st.Y, st.AngleDegrees, st.Shading)
	for x := 0; x < cols; x++ {
		screen.SetContent(x, rows-1, ' ', nil, tcell.StyleDefault)
	}
	terminal.DrawText(screen, 0, rows-1, cols, line, tcell.StyleDefault.Reverse(true))
}
