// Package pacman implements a Pac-Man maze chase: grid-aligned movement with
// wall collision, greedy ghost pursuit, a chase/frightened/eaten mode
// machine and pellet/ghost scoring.
package pacman

import (
	"math"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Game states
const (
	StateReady      = "ready"      // Actors placed, waiting for the start signal
	StatePlaying    = "playing"    // Simulation running
	StatePaused     = "paused"     // Game paused
	StateLevelClear = "levelclear" // All pellets eaten, next level pending
	StateGameOver   = "gameover"   // No lives left
)

// collideDist is the per-axis pixel distance under which player and ghost touch.
const collideDist = 6.0

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

type eventKind int

const (
	eventStart     eventKind = iota // End of the ready pause
	eventRelease                    // A ghost leaves the pen
	eventNextLevel                  // Level clear pause is over
)

type event struct {
	kind  eventKind
	ghost int
}

// Game implements the Pac-Man game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PacmanConfig
	fixedCfg   *config.PacmanConfig // Set by NewWithConfig; skips file loading
	difficulty *config.DifficultyManager
	rng        *core.RNG
	events     core.Timeline[event]

	layout []string
	maze   *Maze
	player Actor
	facing Direction
	ghosts []Ghost

	state          string
	tick           uint64
	score          int
	highScore      int
	lives          int
	level          int
	frightenedLeft int // Ticks left in the current frightened window
	combo          int // Ghosts eaten in the current frightened window

	// Layout (computed from screen size)
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a new Pac-Man game on the standard maze.
func New() *Game {
	return &Game{layout: DefaultLayout}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(cfg config.PacmanConfig) *Game {
	return &Game{layout: DefaultLayout, fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pacman"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Description is the one-line pitch shown in menus.
func (g *Game) Description() string {
	return "Clear the maze. Power pellets turn the ghosts blue."
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadPacman(configPath)
		if err != nil {
			cfg = config.DefaultPacmanConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPacmanPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if len(g.cfg.Gameplay.GhostPoints) == 0 {
		g.cfg.Gameplay.GhostPoints = config.DefaultPacmanConfig().Gameplay.GhostPoints
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)
	g.events.Clear()

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1

	g.startLevel()
	g.calculateLayout()
}

// calculateLayout centers the maze below the one-row HUD. Each cell is two
// characters wide so the maze keeps its proportions in a terminal.
func (g *Game) calculateLayout() {
	mazeW := g.maze.Width() * 2
	mazeH := g.maze.Height()
	g.tooSmall = g.runtime.ScreenW < mazeW || g.runtime.ScreenH < mazeH+1
	g.offsetX = max((g.runtime.ScreenW-mazeW)/2, 0)
	g.offsetY = 1
}

// startLevel repopulates the maze and places every actor at its spawn.
func (g *Game) startLevel() {
	layout := g.layout
	if layout == nil {
		layout = DefaultLayout
	}
	m, err := ParseMaze(layout)
	if err != nil {
		m = MustParseMaze(DefaultLayout)
	}
	g.maze = m
	g.resetActors(g.cfg.Timing.ReadyDelay)
}

// resetActors recreates the player and ghosts at their spawns and schedules
// the start signal after delay ticks. Pellets are left as they are.
func (g *Game) resetActors(delay int) {
	g.player = actorAt(g.maze.PlayerSpawn)
	g.player.Next = DirLeft
	g.facing = DirLeft

	g.ghosts = g.ghosts[:0]
	for _, spawn := range g.maze.GhostSpawns {
		g.ghosts = append(g.ghosts, newGhost(spawn))
	}

	g.frightenedLeft = 0
	g.combo = 0
	g.events.Clear()
	g.state = StateReady
	g.events.Schedule(g.tick+uint64(max(delay, 0)), event{kind: eventStart}) //#nosec G115 -- delay is non-negative
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Only an explicit restart leaves the game over state
	if g.state == StateGameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}
	if g.state == StatePaused {
		return core.StepResult{State: g.State()}
	}

	g.readInput(in)
	g.tick++
	g.runEvents()

	if g.state == StatePlaying {
		g.update()
	}

	return core.StepResult{State: g.State()}
}

// readInput buffers the requested turn; it is applied once the player is
// aligned with a cell that allows it.
func (g *Game) readInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.player.Next = DirUp
	case in.Has(core.ActionDown):
		g.player.Next = DirDown
	case in.Has(core.ActionLeft):
		g.player.Next = DirLeft
	case in.Has(core.ActionRight):
		g.player.Next = DirRight
	}
}

// runEvents applies every deferred transition that has come due.
func (g *Game) runEvents() {
	for _, ev := range g.events.Due(g.tick) {
		switch ev.kind {
		case eventStart:
			g.state = StatePlaying
			for i := range g.ghosts {
				if i == 0 {
					g.release(0)
					continue
				}
				at := g.tick + uint64(i*max(g.cfg.Timing.ReleaseInterval, 0)) //#nosec G115 -- non-negative
				g.events.Schedule(at, event{kind: eventRelease, ghost: i})
			}
		case eventRelease:
			g.release(ev.ghost)
		case eventNextLevel:
			g.level++
			g.startLevel()
		}
	}
}

func (g *Game) release(i int) {
	if i < 0 || i >= len(g.ghosts) || !g.ghosts[i].Penned {
		return
	}
	g.ghosts[i].Penned = false
	g.ghosts[i].Leaving = true
}

// update runs one playing tick. The order is fixed: player move, pellet
// pickup, collision, ghost move, collision, frightened countdown, level check.
func (g *Game) update() {
	g.player.Speed = g.speed(g.cfg.Physics.PlayerSpeed)
	Move(&g.player, g.maze)
	if g.player.Dir != DirNone {
		g.facing = g.player.Dir
	}

	g.eatPellet()

	if g.collide() {
		return
	}

	for i := range g.ghosts {
		g.moveGhost(&g.ghosts[i])
	}

	if g.collide() {
		return
	}

	if g.frightenedLeft > 0 {
		g.frightenedLeft--
		if g.frightenedLeft == 0 {
			for i := range g.ghosts {
				if g.ghosts[i].Mode == ModeFrightened {
					g.ghosts[i].Mode = ModeChase
				}
			}
		}
	}

	if g.maze.PelletsLeft() == 0 {
		g.state = StateLevelClear
		g.events.Clear()
		g.events.Schedule(g.tick+uint64(max(g.cfg.Timing.LevelClearDelay, 0)), event{kind: eventNextLevel}) //#nosec G115 -- non-negative
	}
}

// speed scales a base speed by the current difficulty level.
func (g *Game) speed(base float64) float64 {
	return g.difficulty.Speed(base, g.score, int(g.tick)) //#nosec G115 -- tick fits in int
}

// frightenedTicks returns the frightened window for the current level.
func (g *Game) frightenedTicks() int {
	t := g.cfg.Timing
	return max(t.FrightenedTicks-(g.level-1)*t.FrightenedStep, t.MinFrightenedTicks, 1)
}

// eatPellet consumes whatever pellet is under the player's center.
func (g *Game) eatPellet() {
	cell := g.player.Cell(g.maze)
	switch g.maze.Eat(cell.Col, cell.Row) {
	case CellPellet:
		g.score += g.cfg.Gameplay.PelletPoints
	case CellPower:
		g.score += g.cfg.Gameplay.PowerPoints
		g.frighten()
	}
}

// frighten starts a new frightened window: every ghost that is not eaten
// turns frightened and reverses, and the ghost combo restarts.
func (g *Game) frighten() {
	g.frightenedLeft = g.frightenedTicks()
	g.combo = 0
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Mode == ModeEaten {
			continue
		}
		gh.Mode = ModeFrightened
		if !gh.Penned && !gh.Leaving {
			gh.turnAround()
		}
	}
}

// collide resolves player/ghost contact. It reports whether the player died.
func (g *Game) collide() bool {
	px, py := g.player.Center()
	w := worldWidth(g.maze)
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Penned {
			continue
		}
		gx, gy := gh.Center()
		if math.Abs(core.WrapDelta(px, gx, w)) >= collideDist || math.Abs(gy-py) >= collideDist {
			continue
		}
		switch gh.Mode {
		case ModeFrightened:
			g.eatGhost(gh)
		case ModeChase:
			g.loseLife()
			return true
		}
	}
	return false
}

// eatGhost awards the next value of the combo sequence and sends the ghost home.
func (g *Game) eatGhost(gh *Ghost) {
	points := g.cfg.Gameplay.GhostPoints
	g.score += points[min(g.combo, len(points)-1)]
	g.combo++
	gh.Mode = ModeEaten
	gh.decided = Point{-1, -1}
}

// loseLife costs a life. The last life ends the game; otherwise every
// actor is recreated at its spawn and pellets stay as they are.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.events.Clear()
		return
	}
	g.resetActors(g.cfg.Timing.RespawnDelay)
}

// moveGhost chooses a direction at each new cell and moves the ghost.
func (g *Game) moveGhost(gh *Ghost) {
	if gh.Penned {
		return
	}

	switch gh.Mode {
	case ModeFrightened:
		gh.Speed = g.cfg.Physics.FrightenedSpeed
	case ModeEaten:
		gh.Speed = g.cfg.Physics.EatenSpeed
	default:
		gh.Speed = g.speed(g.cfg.Physics.GhostSpeed)
	}

	grid := gh.grid(g.maze)
	if x, y, ok := aligned(&gh.Actor, grid); ok {
		cell := cellOf(grid, x, y)
		if cell != gh.decided || gh.Dir == DirNone {
			gh.decided = cell
			if cell == g.maze.Home && (gh.Leaving || gh.Mode == ModeEaten) {
				gh.Leaving = false
				if gh.Mode == ModeEaten {
					gh.Mode = ModeChase
				}
				grid = gh.grid(g.maze)
			}
			gh.X, gh.Y = x, y
			gh.Next = g.chooseDirection(gh, grid, cell)
		}
	}

	Move(&gh.Actor, grid)
}

// chooseDirection picks a ghost's heading out of a cell by mode.
func (g *Game) chooseDirection(gh *Ghost, grid Grid, cell Point) Direction {
	valid := ValidDirections(grid, cell, gh.Dir)
	switch {
	case gh.Mode == ModeEaten || gh.Leaving:
		return Pursue(grid, cell, g.maze.Home, valid)
	case gh.Mode == ModeFrightened:
		return Wander(g.rng, valid)
	default:
		return Pursue(grid, cell, g.player.Cell(g.maze), valid)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}
