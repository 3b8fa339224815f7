package pacman

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Visual characters for rendering
const (
	PelletChar = '·'
	PowerChar  = '●'
	DoorChar   = '─'
	GhostChar  = 'Ω'
	EyesChar   = '"'
)

// playerGlyphs face the direction of travel.
var playerGlyphs = map[Direction]rune{
	DirUp:    'ᗢ',
	DirDown:  'ᗣ',
	DirLeft:  'ᗤ',
	DirRight: 'ᗧ',
}

// ghostColors in spawn order.
var ghostColors = []core.Color{core.ColorRed, core.ColorMagenta, core.ColorCyan, core.ColorOrange}

// wallGlyphs is indexed by a neighbor mask: up=1, down=2, left=4, right=8.
var wallGlyphs = [16]rune{
	'■', '│', '│', '│',
	'─', '┘', '┐', '┤',
	'─', '└', '┌', '├',
	'─', '┴', '┬', '┼',
}

// Render draws the current game state to the screen: maze, pellets,
// actors, then HUD and overlays. It never mutates the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.maze.Width()*2, g.maze.Height()+1)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderMaze(dst)
	g.renderPellets(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// solid reports whether a cell is wall without wrapping or padding the grid.
func (g *Game) solid(col, row int) bool {
	if col < 0 || col >= g.maze.Width() || row < 0 || row >= g.maze.Height() {
		return false
	}
	return g.maze.IsWall(col, row)
}

// interior reports whether a wall cell is surrounded by wall on all eight sides.
func (g *Game) interior(col, row int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !g.solid(col+dx, row+dy) {
				return false
			}
		}
	}
	return true
}

// renderMaze draws walls as connected line art, plus the pen door.
func (g *Game) renderMaze(dst *core.Screen) {
	for row := range g.maze.Height() {
		y := g.offsetY + row
		for col := range g.maze.Width() {
			x := g.offsetX + col*2
			switch g.maze.At(col, row) {
			case CellWall:
				if g.interior(col, row) {
					continue
				}
				mask := 0
				if g.solid(col, row-1) {
					mask |= 1
				}
				if g.solid(col, row+1) {
					mask |= 2
				}
				if g.solid(col-1, row) {
					mask |= 4
				}
				if g.solid(col+1, row) {
					mask |= 8
				}
				dst.SetColor(x, y, wallGlyphs[mask], core.ColorBlue)
				if mask&8 != 0 && !g.interior(col+1, row) {
					dst.SetColor(x+1, y, '─', core.ColorBlue)
				}
			case CellDoor:
				dst.SetColor(x, y, DoorChar, core.ColorMagenta)
				dst.SetColor(x+1, y, DoorChar, core.ColorMagenta)
			}
		}
	}
}

// renderPellets draws the remaining pellets. Power pellets blink.
func (g *Game) renderPellets(dst *core.Screen) {
	blinkOn := (g.tick/15)%2 == 0 || g.state != StatePlaying
	for row := range g.maze.Height() {
		y := g.offsetY + row
		for col := range g.maze.Width() {
			x := g.offsetX + col*2
			switch g.maze.At(col, row) {
			case CellPellet:
				dst.SetColor(x, y, PelletChar, core.ColorWhite)
			case CellPower:
				if blinkOn {
					dst.SetColor(x, y, PowerChar, core.ColorBrightYellow)
				}
			}
		}
	}
}

// screenPos maps an actor's pixel position to a screen cell. Each screen
// column covers half a maze cell.
func (g *Game) screenPos(a *Actor) (int, int) {
	span := g.maze.Width() * 2
	col := int(math.Round(a.X / (TileSize / 2)))
	col = ((col % span) + span) % span
	row := int(math.Round(a.Y / TileSize))
	return g.offsetX + col, g.offsetY + row
}

func (g *Game) renderGhosts(dst *core.Screen) {
	warning := g.frightenedLeft > 0 && g.frightenedLeft < 120 && (g.tick/10)%2 == 0
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		x, y := g.screenPos(&gh.Actor)
		switch gh.Mode {
		case ModeEaten:
			dst.SetColor(x, y, EyesChar, core.ColorBrightWhite)
		case ModeFrightened:
			c := core.ColorBrightBlue
			if warning {
				c = core.ColorBrightWhite
			}
			dst.SetColor(x, y, GhostChar, c)
		default:
			dst.SetColor(x, y, GhostChar, ghostColors[i%len(ghostColors)])
		}
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.screenPos(&g.player)
	glyph := playerGlyphs[g.facing]
	// Mouth closes every few ticks while moving
	if g.state == StatePlaying && g.player.Dir != DirNone && (g.tick/6)%2 == 1 {
		glyph = '●'
	}
	dst.SetColor(x, y, glyph, core.ColorBrightYellow)
}

// renderHUD draws score, high score, level and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(g.offsetX, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)

	hi := max(g.highScore, g.score)
	dst.DrawTextCenteredColor(0, fmt.Sprintf("HI %d", hi), core.ColorYellow)

	right := fmt.Sprintf("L%d %s", g.level, strings.Repeat(string(playerGlyphs[DirRight]), g.lives))
	x := g.offsetX + g.maze.Width()*2 - len([]rune(right))
	dst.DrawTextColor(x, 0, right, core.ColorBrightYellow)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateReady:
		row := min(g.offsetY+g.maze.Home.Row+5, dst.Height()-1)
		dst.DrawTextCenteredColor(row, "READY!", core.ColorBrightYellow)

	case StatePaused:
		dst.DrawOverlay("PAUSED", "Press P to resume", core.ColorBrightYellow)

	case StateLevelClear:
		dst.DrawOverlay(fmt.Sprintf("LEVEL %d CLEAR", g.level), "Get ready...", core.ColorBrightGreen)

	case StateGameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score), core.ColorBrightRed)
	}
}
