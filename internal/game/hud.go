package game

import (
	"fmt"
	"image/color"

	"raycaster/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
	hudCharWidth  = 7
)

// hudLines formats the overlay text. stats may be nil until the first refresh.
func hudLines(st engine.Status, fps, tps float64, stats map[string]interface{}) []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", fps, tps),
		fmt.Sprintf("Pos: %.2f, %.2f", st.X, st.Y),
		fmt.Sprintf("Heading: %.0f deg", st.AngleDegrees),
		fmt.Sprintf("Shading: %s (Tab)", st.Shading),
	}
	if cols, ok := stats["columns_per_frame"].(float64); ok {
		goroutines, _ := stats["goroutines"].(int)
		lines = append(lines, fmt.Sprintf("Cols/frame: %.0f  Goroutines: %d", cols, goroutines))
	}
	if st.AheadCell != 0 {
		lines = append(lines, fmt.Sprintf("Ahead: wall %d at %.2f", st.AheadCell, st.AheadDist))
	}
	return lines
}

// drawHUD draws the status box in the top-left corner
func drawHUD(screen *ebiten.Image, lines []string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	w := float32(maxLen*hudCharWidth + hudPadding*2)
	h := float32(len(lines)*hudLineHeight + hudPadding*2)
	vector.DrawFilledRect(screen, 4, 4, w, h, color.RGBA{0, 0, 0, 160}, false)

	face := basicfont.Face7x13
	for i, line := range lines {
		baseline := 4 + hudPadding + (i+1)*hudLineHeight - 3
		ebitext.Draw(screen, line, face, 4+hudPadding, baseline, color.White)
	}
}
