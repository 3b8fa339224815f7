package klax

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Visual characters for rendering
const (
	TileGlyph  = '█'
	BeltGlyph  = '·'
	laneWidth  = 4
	panelWidth = 18
)

var tileColors = []core.Color{
	core.ColorBrightRed, core.ColorBrightYellow, core.ColorBrightGreen, core.ColorBrightBlue,
	core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorOrange, core.ColorWhite,
}

func tileColor(c Color) core.Color {
	return tileColors[(int(c)-1+len(tileColors))%len(tileColors)]
}

// calculateLayout places the belt and bin on the left and the status panel
// on the right, centered as a block.
func (g *Game) calculateLayout() {
	width := g.cfg.Bin.Columns*laneWidth + 2 + 2 + panelWidth
	height := 1 + g.cfg.Belt.Length + 1 + g.cfg.Bin.Rows + 2
	g.tooSmall = g.runtime.ScreenW < width || g.runtime.ScreenH < height
	g.offsetX = max((g.runtime.ScreenW-width)/2, 0)
	g.offsetY = max((g.runtime.ScreenH-height)/2, 0) + 1
}

// laneX returns the screen column where a lane's cell starts.
func (g *Game) laneX(lane int) int {
	return g.offsetX + 1 + lane*laneWidth
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Enlarge the terminal")
		return
	}

	g.renderBelt(dst)
	g.renderPaddle(dst)
	g.renderBin(dst)
	g.renderPanel(dst)
	g.renderHUD(dst)

	switch g.state {
	case StatePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume", core.ColorBrightYellow)
	case StateGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	}
}

func (g *Game) drawTile(dst *core.Screen, lane, y int, c Color) {
	x := g.laneX(lane) + 1
	dst.SetColor(x, y, TileGlyph, tileColor(c))
	dst.SetColor(x+1, y, TileGlyph, tileColor(c))
}

func (g *Game) renderBelt(dst *core.Screen) {
	right := g.laneX(g.bin.Columns())
	for row := range g.cfg.Belt.Length {
		y := g.offsetY + row
		dst.SetColor(g.offsetX, y, '│', core.ColorGray)
		dst.SetColor(right, y, '│', core.ColorGray)
		// Belt dots scroll one row per advance
		if (row+int(g.tick/uint64(max(g.beltInterval(), 1))))%2 == 0 { //#nosec G115 -- positive interval
			for lane := range g.bin.Columns() {
				dst.SetColor(g.laneX(lane)+laneWidth/2, y, BeltGlyph, core.ColorGray)
			}
		}
	}
	for _, t := range g.belt {
		g.drawTile(dst, t.Lane, g.offsetY+t.Row, t.Color)
	}
}

// renderPaddle draws the paddle under its lane with the top tile in it.
func (g *Game) renderPaddle(dst *core.Screen) {
	y := g.offsetY + g.cfg.Belt.Length
	x := g.laneX(g.paddle)
	dst.DrawTextColor(x, y, "└──┘", core.ColorBrightWhite)
	if n := len(g.stack); n > 0 {
		g.drawTile(dst, g.paddle, y, g.stack[n-1])
	}
}

func (g *Game) renderBin(dst *core.Screen) {
	top := g.offsetY + g.cfg.Belt.Length + 1
	inner := g.bin.Columns() * laneWidth
	dst.DrawBox(core.NewRect(g.offsetX, top, inner+2, g.bin.Rows()+2))
	for row := range g.bin.Rows() {
		for col := range g.bin.Columns() {
			if c := g.bin.At(col, row); c != Empty {
				g.drawTile(dst, col, top+1+row, c)
			}
		}
	}
}

// renderPanel draws wave progress, drops, the paddle stack and messages.
func (g *Game) renderPanel(dst *core.Screen) {
	x := g.laneX(g.bin.Columns()) + 3
	y := g.offsetY
	limit := g.cfg.Gameplay.DropLimit

	dst.DrawTextColor(x, y, fmt.Sprintf("WAVE  %d", g.wave), core.ColorBrightGreen)
	dst.DrawTextColor(x, y+1, fmt.Sprintf("KLAX  %d/%d", g.klaxes, g.cfg.Gameplay.KlaxesPerWave), core.ColorBrightWhite)
	dst.DrawTextColor(x, y+2, "DROPS "+strings.Repeat("✗", g.drops)+strings.Repeat("·", max(limit-g.drops, 0)), core.ColorBrightRed)

	dst.DrawTextColor(x, y+4, "PADDLE", core.ColorGray)
	for i, c := range g.stack {
		dst.SetColor(x+i*2, y+5, TileGlyph, tileColor(c))
	}

	if msg := g.activeMessage(); msg != "" {
		dst.DrawTextColor(x, y+7, msg, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(g.offsetX, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	hi := max(g.highScore, g.score)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("HI %d", hi), core.ColorYellow)
}
