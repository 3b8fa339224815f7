package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Visual characters for rendering
const (
	BulletChar = '•'
	FlameChar  = '*'
	LifeChar   = '▲'
)

// shipGlyphs are the eight compass arrows, clockwise from up.
var shipGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

var rockStyle = map[Size]struct {
	glyph rune
	color core.Color
}{
	SizeLarge:  {'▓', core.ColorGray},
	SizeMedium: {'▒', core.ColorWhite},
	SizeSmall:  {'▒', core.ColorBrightWhite},
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minWidth, minHeight))
		return
	}

	g.renderRocks(dst)
	g.renderBullets(dst)
	g.renderShip(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// toScreen maps a world position to a screen cell.
func (g *Game) toScreen(p core.Vec) (int, int) {
	p = p.Wrap(g.worldW, g.worldH)
	return int(p.X), hudRows + int(p.Y/2)
}

// renderRocks fills each rock's disc, sampled once per screen cell.
func (g *Game) renderRocks(dst *core.Screen) {
	for _, r := range g.rocks {
		radius := g.radius(r.Size)
		style := rockStyle[r.Size]
		reach := int(math.Ceil(radius))
		for dy := -reach; dy <= reach; dy += 2 {
			for dx := -reach; dx <= reach; dx++ {
				if float64(dx*dx+dy*dy) >= radius*radius {
					continue
				}
				x, y := g.toScreen(r.Pos.Add(core.Vec{X: float64(dx), Y: float64(dy)}))
				dst.SetColor(x, y, style.glyph, style.color)
			}
		}
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		x, y := g.toScreen(b.Pos)
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderShip(dst *core.Screen) {
	s := &g.ship
	if !s.Alive {
		return
	}
	// Blink while protected
	if s.Invulnerable > 0 && (g.tick/4)%2 == 1 {
		return
	}
	n := g.cfg.Ship.Headings
	if s.Thrusting {
		tail := s.Pos.Sub(headingVec(s.Heading, n).Scale(g.cfg.Ship.Radius + 1))
		x, y := g.toScreen(tail)
		dst.SetColor(x, y, FlameChar, core.ColorOrange)
	}
	x, y := g.toScreen(s.Pos)
	dst.SetColor(x, y, shipGlyphs[(s.Heading*8+n/2)/n%8], core.ColorBrightCyan)
}

// renderHUD draws score, high score, wave and ships on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)

	hi := max(g.highScore, g.score)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("HI %d", hi), core.ColorYellow)

	right := fmt.Sprintf("WAVE %d %s", g.wave, strings.Repeat(string(LifeChar), g.lives))
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume", core.ColorBrightYellow)
	case StateGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	default:
		if g.wavePending {
			dst.DrawTextCenteredColor(hudRows+2, fmt.Sprintf("WAVE %d", g.wave+1), core.ColorBrightGreen)
		}
	}
}
