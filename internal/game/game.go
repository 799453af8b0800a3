package game

import (
	"errors"
	"log"
	"time"

	"raycaster/internal/config"
	"raycaster/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game hosts an engine session in an ebiten window: Update advances the camera at the
// fixed tick rate and Draw uploads the finished frame.
type Game struct {
	session *engine.Session
	input   *InputHandler
	frame   *ebiten.Image
	width   int
	height  int

	showHUD    bool
	dragWindow bool
	drag       windowDrag

	stats   map[string]interface{}
	statsAt time.Time
}

// hudStatsInterval is how often the HUD re-reads the detailed statistics.
const hudStatsInterval = time.Second

// NewGame creates the session and the presentation image.
func NewGame(cfg *config.Config) (*Game, error) {
	session, err := engine.NewSession(cfg, engine.Options{})
	if err != nil {
		return nil, err
	}
	w, h := session.FrameSize()
	return &Game{
		session:    session,
		input:      NewInputHandler(),
		frame:      ebiten.NewImage(w, h),
		width:      w,
		height:     h,
		showHUD:    cfg.Performance.ShowHUD,
		dragWindow: cfg.Display.DragWindow,
	}, nil
}

func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Quit {
		return ebiten.Termination
	}
	if in.ToggleShading {
		log.Printf("Shading: %s", g.session.ToggleShading())
	}
	if in.ToggleHUD {
		g.showHUD = !g.showHUD
	}

	g.session.Tick(in.Intents)

	if g.dragWindow {
		g.updateWindowDrag()
	}
	now := time.Now()
	if g.showHUD && now.Sub(g.statsAt) >= hudStatsInterval {
		g.stats, g.statsAt = g.session.DetailedStats(), now
	}
	g.session.LogAlerts(now)
	return nil
}

func (g *Game) updateWindowDrag() {
	cx, cy := ebiten.CursorPosition()
	ww, _ := ebiten.WindowSize()
	scale := float64(ww) / float64(g.width)
	dx, dy := g.drag.update(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), cx, cy, scale)
	if dx != 0 || dy != 0 {
		wx, wy := ebiten.WindowPosition()
		ebiten.SetWindowPosition(wx+dx, wy+dy)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	frameTimer := g.session.Monitor().StartFrame()
	defer frameTimer.EndFrame()

	fb := g.session.Render()
	g.frame.WritePixels(fb.Pix)
	screen.DrawImage(g.frame, nil)

	if g.showHUD {
		drawHUD(screen, hudLines(g.session.Status(), ebiten.ActualFPS(), ebiten.ActualTPS(), g.stats))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// Close releases the session's workers.
func (g *Game) Close() {
	g.session.Close()
}

// Run applies the window settings and blocks until the window closes.
func Run(cfg *config.Config) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(int(float64(g.width)*cfg.Display.Scale), int(float64(g.height)*cfg.Display.Scale))
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetWindowDecorated(!cfg.Display.Borderless)
	if cfg.Display.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
