// Package klax implements a Klax-style tile game: coloured tiles roll down
// a conveyor, a paddle catches them and drops them into a bin, and lines
// of three or more of one colour clear with cascading chain bonuses.
package klax

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"  // Belt running
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Drop limit reached
)

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
	eventBelt    eventKind = iota // Advance the conveyor one row
	eventCascade                  // Settle the bin after a clear
)

// Tile is a tile riding the conveyor. Row 0 is the far end of the belt.
type Tile struct {
	Lane  int
	Row   int
	Color Color
}

// Game implements the Klax game logic.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.KlaxConfig
	fixedCfg   *config.KlaxConfig
	difficulty *config.DifficultyManager
	rng        *core.RNG
	events     core.Timeline[eventKind]

	belt       []Tile
	sinceSpawn int // Belt advances since the last new tile
	paddle     int
	stack      []Color // Tiles on the paddle, top last
	bin        *Bin

	cascading bool
	chain     int // Cascade step of the current clear, 1-based

	state     string
	tick      uint64
	score     int
	highScore int
	drops     int
	wave      int
	klaxes    int // Klaxes toward the current wave goal
	total     int // Klaxes made this game

	message      string
	messageUntil uint64

	offsetX, offsetY int
	tooSmall         bool
}

// New creates a new Klax game.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(cfg config.KlaxConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "klax"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Klax"
}

// Description is the one-line pitch shown in menus.
func (g *Game) Description() string {
	return "Catch tiles on the paddle and drop rows of three into the bin."
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
		cfg, err := config.LoadKlax(configPath)
		if err != nil {
			cfg = config.DefaultKlaxConfig()
		}
		if difficultyPreset != "" {
			config.ApplyKlaxPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.cfg.Gameplay.Colors = max(g.cfg.Gameplay.Colors, 1)
	g.cfg.Belt.Length = max(g.cfg.Belt.Length, 2)

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)
	g.events.Clear()

	g.bin = NewBin(g.cfg.Bin.Columns, g.cfg.Bin.Rows)
	g.belt = g.belt[:0]
	g.sinceSpawn = 0
	g.paddle = g.cfg.Bin.Columns / 2
	g.stack = g.stack[:0]
	g.cascading = false
	g.chain = 0

	g.tick = 0
	g.score = 0
	g.drops = 0
	g.wave = 1
	g.klaxes = 0
	g.total = 0
	g.message = ""
	g.messageUntil = 0
	g.state = StatePlaying

	g.calculateLayout()
	g.spawnTile()
	g.scheduleBelt()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

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

	g.tick++
	g.runEvents()
	if g.state == StatePlaying {
		g.handleInput(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) runEvents() {
	for _, ev := range g.events.Due(g.tick) {
		switch ev {
		case eventBelt:
			g.advanceBelt()
		case eventCascade:
			g.bin.Collapse()
			g.resolve()
		}
		if g.state == StateGameOver {
			return
		}
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle = max(g.paddle-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.paddle = min(g.paddle+1, g.bin.Columns()-1)
	}
	if in.Has(core.ActionFire) || in.Has(core.ActionDown) {
		g.dropTile()
	}
	if in.Has(core.ActionUp) {
		g.toss()
	}
}

// beltInterval is the number of ticks between belt advances. It shortens
// with difficulty and with each wave.
func (g *Game) beltInterval() int {
	b := g.cfg.Belt
	base := g.difficulty.Interval(b.StepTicks, b.MinStepTicks, g.score, int(g.tick)) //#nosec G115 -- tick fits in int
	return max(base-(g.wave-1)*2, b.MinStepTicks, 1)
}

func (g *Game) scheduleBelt() {
	g.events.Schedule(g.tick+uint64(g.beltInterval()), eventBelt) //#nosec G115 -- interval is positive
}

// advanceBelt moves every tile one row toward the paddle. Tiles leaving the
// belt land on the paddle if it is under them and has room; otherwise they
// are dropped.
func (g *Game) advanceBelt() {
	kept := g.belt[:0]
	for i, t := range g.belt {
		if g.state == StateGameOver {
			// The last allowed drop ended the game; the rest stay put
			kept = append(kept, g.belt[i:]...)
			break
		}
		t.Row++
		if t.Row < g.cfg.Belt.Length {
			kept = append(kept, t)
			continue
		}
		g.arrive(t)
	}
	g.belt = kept
	if g.state == StateGameOver {
		return
	}

	g.sinceSpawn++
	if g.sinceSpawn >= max(g.cfg.Belt.SpawnEvery, 1) {
		g.sinceSpawn = 0
		g.spawnTile()
	}
	g.scheduleBelt()
}

func (g *Game) arrive(t Tile) {
	if t.Lane == g.paddle && len(g.stack) < g.cfg.Bin.PaddleCapacity {
		g.stack = append(g.stack, t.Color)
		return
	}
	g.drops++
	g.showMessage("MISSED!")
	if g.drops >= g.cfg.Gameplay.DropLimit {
		g.state = StateGameOver
		g.events.Clear()
	}
}

// spawnTile puts a random tile at the far end of a random lane.
func (g *Game) spawnTile() {
	lane := g.rng.Intn(g.bin.Columns())
	color := Color(1 + g.rng.Intn(g.cfg.Gameplay.Colors)) //#nosec G115 -- colours fit in a byte
	g.belt = append(g.belt, Tile{Lane: lane, Row: 0, Color: color})
}

// dropTile drops the paddle's top tile into the bin column below it. A full
// column rejects the tile, which stays on the paddle.
func (g *Game) dropTile() {
	if len(g.stack) == 0 || g.cascading {
		return
	}
	top := g.stack[len(g.stack)-1]
	if _, ok := g.bin.Drop(g.paddle, top); !ok {
		g.showMessage("COLUMN FULL")
		return
	}
	g.stack = g.stack[:len(g.stack)-1]
	g.chain = 0
	g.resolve()
}

// toss flips the paddle's top tile back up the belt.
func (g *Game) toss() {
	if len(g.stack) == 0 {
		return
	}
	row := g.cfg.Belt.Length / 2
	if slices.ContainsFunc(g.belt, func(t Tile) bool { return t.Lane == g.paddle && t.Row == row }) {
		return
	}
	top := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	g.belt = append(g.belt, Tile{Lane: g.paddle, Row: row, Color: top})
}

// resolve scores and clears every klax in the bin. When something cleared,
// the bin settles after the cascade delay and is checked again.
func (g *Game) resolve() {
	found := FindKlaxes(g.bin)
	if len(found) == 0 {
		g.cascading = false
		g.chain = 0
		return
	}

	g.chain++
	for _, k := range found {
		g.score += g.klaxScore(k) * g.chain
	}
	g.bin.Clear(Cells(found))
	g.klaxes += len(found)
	g.total += len(found)
	if g.chain > 1 {
		g.showMessage(fmt.Sprintf("CHAIN x%d", g.chain))
	}
	g.checkWave()

	g.cascading = true
	g.events.Schedule(g.tick+uint64(max(g.cfg.Gameplay.CascadeDelay, 1)), eventCascade) //#nosec G115 -- positive
}

// klaxScore is the base award for a klax. Every tile beyond the minimum
// doubles it.
func (g *Game) klaxScore(k Klax) int {
	s := g.cfg.Scoring
	base := s.Vertical
	switch k.Orientation {
	case Horizontal:
		base = s.Horizontal
	case Diagonal:
		base = s.Diagonal
	}
	return base << max(len(k.Cells)-MinRun, 0)
}

func (g *Game) checkWave() {
	goal := g.cfg.Gameplay.KlaxesPerWave
	if goal <= 0 || g.klaxes < goal {
		return
	}
	g.wave++
	g.klaxes = 0
	g.showMessage(fmt.Sprintf("WAVE %d", g.wave))
}

func (g *Game) showMessage(text string) {
	g.message = text
	g.messageUntil = g.tick + uint64(max(g.cfg.Gameplay.MessageTicks, 0)) //#nosec G115 -- non-negative
}

// activeMessage returns the transient message if it has not expired.
func (g *Game) activeMessage() string {
	if g.tick < g.messageUntil {
		return g.message
	}
	return ""
}

// State returns the current game state. Lives reports drops left.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    max(g.cfg.Gameplay.DropLimit-g.drops, 0),
		Level:    g.wave,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("klax", func() registry.Game {
		return New()
	})
}
