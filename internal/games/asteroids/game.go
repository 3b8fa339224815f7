// Package asteroids implements a vector-style Asteroids: a wrapping
// playfield, a rotating thrust ship, bullets with a lifetime and rocks that
// split into smaller rocks when shot.
package asteroids

import (
	"math"
	"slices"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
	"github.com/vovakirdan/arcade-classics/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"  // Simulation running
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No ships left
)

const (
	hudRows   = 1
	minWidth  = 40
	minHeight = 12
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
	eventRespawn eventKind = iota // Bring the ship back
	eventWave                     // Start the next wave
)

// Game implements the Asteroids game logic. The world is measured in
// units of one terminal column; a terminal row is two units tall.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	fixedCfg   *config.AsteroidsConfig
	difficulty *config.DifficultyManager
	rng        *core.RNG
	events     core.Timeline[eventKind]

	ship    Ship
	bullets []Bullet
	rocks   []Rock

	state         string
	tick          uint64
	score         int
	highScore     int
	lives         int
	wave          int
	nextExtraLife int
	wavePending   bool

	worldW, worldH float64
	tooSmall       bool
}

// New creates a new Asteroids game.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Description is the one-line pitch shown in menus.
func (g *Game) Description() string {
	return "Split the rocks before they hit you. Down jumps to hyperspace."
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
		cfg, err := config.LoadAsteroids(configPath)
		if err != nil {
			cfg = config.DefaultAsteroidsConfig()
		}
		if difficultyPreset != "" {
			config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	if g.cfg.Ship.Headings <= 0 {
		g.cfg.Ship.Headings = 16
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRNG(runtime.Seed)
	g.events.Clear()

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.nextExtraLife = g.cfg.Gameplay.ExtraLifeEvery
	g.wavePending = false
	g.bullets = g.bullets[:0]
	g.rocks = g.rocks[:0]

	g.calculateLayout()
	g.spawnShip()
	g.spawnWave()
	g.state = StatePlaying
}

// calculateLayout sizes the world to the screen below the HUD.
func (g *Game) calculateLayout() {
	g.tooSmall = g.runtime.ScreenW < minWidth || g.runtime.ScreenH < minHeight
	g.worldW = float64(max(g.runtime.ScreenW, 1))
	g.worldH = float64(max(g.runtime.ScreenH-hudRows, 1) * 2)
}

func (g *Game) center() core.Vec {
	return core.Vec{X: g.worldW / 2, Y: g.worldH / 2}
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
	g.handleInput(in)
	g.update()

	return core.StepResult{State: g.State()}
}

func (g *Game) runEvents() {
	for _, ev := range g.events.Due(g.tick) {
		switch ev {
		case eventRespawn:
			// Wait for the middle of the field to clear
			if g.rockNear(g.center(), g.cfg.Rocks.SafeDistance) {
				g.events.Schedule(g.tick+1, eventRespawn)
				continue
			}
			g.spawnShip()
		case eventWave:
			g.wave++
			g.wavePending = false
			g.spawnWave()
		}
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	g.ship.Thrusting = false
	if !g.ship.Alive {
		return
	}
	n := g.cfg.Ship.Headings
	if in.Has(core.ActionLeft) {
		g.ship.Heading = (g.ship.Heading + n - 1) % n
	}
	if in.Has(core.ActionRight) {
		g.ship.Heading = (g.ship.Heading + 1) % n
	}
	if in.Has(core.ActionUp) {
		dir := headingVec(g.ship.Heading, n)
		g.ship.Vel = g.ship.Vel.Add(dir.Scale(g.cfg.Ship.Thrust))
		g.ship.Thrusting = true
	}
	if in.Has(core.ActionFire) {
		g.fire()
	}
	if in.Has(core.ActionDown) {
		g.hyperspace()
	}
}

// fire launches a bullet from the nose if fewer than the maximum are live.
func (g *Game) fire() {
	if len(g.bullets) >= g.cfg.Bullets.MaxActive {
		return
	}
	dir := headingVec(g.ship.Heading, g.cfg.Ship.Headings)
	g.bullets = append(g.bullets, Bullet{
		Pos:  g.ship.Pos.Add(dir.Scale(g.cfg.Ship.Radius)).Wrap(g.worldW, g.worldH),
		Vel:  dir.Scale(g.cfg.Bullets.Speed).Add(g.ship.Vel),
		Life: g.cfg.Bullets.Lifetime,
	})
}

// hyperspace jumps the ship to a random point and kills its momentum.
func (g *Game) hyperspace() {
	g.ship.Pos = core.Vec{X: g.rng.Float64() * g.worldW, Y: g.rng.Float64() * g.worldH}
	g.ship.Vel = core.Vec{}
}

// update runs one tick of physics: move everything, then resolve hits.
func (g *Game) update() {
	g.moveShip()
	g.moveBullets()
	g.moveRocks()
	g.collideBullets()
	g.collideShip()

	if len(g.rocks) == 0 && !g.wavePending && g.state == StatePlaying {
		g.wavePending = true
		g.events.Schedule(g.tick+uint64(max(g.cfg.Gameplay.WaveDelay, 0)), eventWave) //#nosec G115 -- non-negative
	}
}

func (g *Game) moveShip() {
	if !g.ship.Alive {
		return
	}
	s := &g.ship
	s.Vel = s.Vel.Scale(g.cfg.Ship.Friction)
	if speed := s.Vel.Len(); speed > g.cfg.Ship.MaxSpeed && speed > 0 {
		s.Vel = s.Vel.Scale(g.cfg.Ship.MaxSpeed / speed)
	}
	s.Pos = s.Pos.Add(s.Vel).Wrap(g.worldW, g.worldH)
	if s.Invulnerable > 0 {
		s.Invulnerable--
	}
}

func (g *Game) moveBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Pos = b.Pos.Add(b.Vel).Wrap(g.worldW, g.worldH)
		b.Life--
		if b.Life > 0 {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

func (g *Game) moveRocks() {
	for i := range g.rocks {
		r := &g.rocks[i]
		r.Pos = r.Pos.Add(r.Vel).Wrap(g.worldW, g.worldH)
	}
}

// collideBullets removes every bullet that hits a rock and splits the rock.
func (g *Game) collideBullets() {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if i := g.rockAt(b.Pos, 0); i >= 0 {
			g.destroyRock(i)
			continue
		}
		kept = append(kept, b)
	}
	g.bullets = kept
}

// collideShip destroys the ship and the rock it touched.
func (g *Game) collideShip() {
	if !g.ship.Alive || g.ship.Invulnerable > 0 {
		return
	}
	i := g.rockAt(g.ship.Pos, g.cfg.Ship.Radius)
	if i < 0 {
		return
	}
	g.destroyRock(i)
	g.killShip()
}

// rockAt returns the index of the first rock overlapping a circle, or -1.
func (g *Game) rockAt(p core.Vec, radius float64) int {
	for i, r := range g.rocks {
		if core.CirclesOverlap(p, radius, r.Pos, g.radius(r.Size), g.worldW, g.worldH) {
			return i
		}
	}
	return -1
}

// rockNear reports whether any rock edge is within dist of p.
func (g *Game) rockNear(p core.Vec, dist float64) bool {
	return g.rockAt(p, dist) >= 0
}

func (g *Game) radius(s Size) float64 {
	switch s {
	case SizeLarge:
		return g.cfg.Rocks.LargeRadius
	case SizeMedium:
		return g.cfg.Rocks.MediumRadius
	}
	return g.cfg.Rocks.SmallRadius
}

func (g *Game) points(s Size) int {
	switch s {
	case SizeLarge:
		return g.cfg.Gameplay.LargePoints
	case SizeMedium:
		return g.cfg.Gameplay.MediumPoints
	}
	return g.cfg.Gameplay.SmallPoints
}

// rockSpeed is the launch speed for a rock of the given size at the current
// difficulty.
func (g *Game) rockSpeed(s Size) float64 {
	base := g.difficulty.Speed(g.cfg.Rocks.BaseSpeed, g.score, int(g.tick)) //#nosec G115 -- tick fits in int
	return base * s.speedFactor()
}

// destroyRock scores rock i and replaces it with two smaller rocks flying
// apart from the parent's heading.
func (g *Game) destroyRock(i int) {
	r := g.rocks[i]
	g.rocks = slices.Delete(g.rocks, i, i+1)
	g.addScore(g.points(r.Size))

	if r.Size == SizeSmall {
		return
	}
	child := r.Size - 1
	dir := r.Vel
	if dir.LenSq() == 0 {
		dir = core.Vec{X: 1}
	}
	dir = dir.Scale(1 / dir.Len())
	speed := g.rockSpeed(child)
	spread := 0.3 + g.rng.Float64()*0.6
	for _, a := range []float64{spread, -spread} {
		g.rocks = append(g.rocks, Rock{Pos: r.Pos, Vel: rotate(dir, a).Scale(speed), Size: child})
	}
}

// addScore awards points and grants an extra ship at each threshold.
func (g *Game) addScore(p int) {
	g.score += p
	every := g.cfg.Gameplay.ExtraLifeEvery
	for every > 0 && g.score >= g.nextExtraLife {
		g.lives++
		g.nextExtraLife += every
	}
}

func (g *Game) killShip() {
	g.ship.Alive = false
	g.ship.Vel = core.Vec{}
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		g.events.Clear()
		return
	}
	g.events.Schedule(g.tick+uint64(max(g.cfg.Ship.RespawnDelay, 0)), eventRespawn) //#nosec G115 -- non-negative
}

// spawnShip places a fresh ship in the middle of the field, pointing up.
func (g *Game) spawnShip() {
	g.ship = Ship{
		Pos:          g.center(),
		Alive:        true,
		Invulnerable: g.cfg.Ship.InvulnerableTicks,
	}
}

// spawnWave adds the wave's large rocks away from the ship.
func (g *Game) spawnWave() {
	n := max(g.cfg.Rocks.InitialCount+g.wave-1, 1)
	for range n {
		angle := g.rng.Float64() * 2 * math.Pi
		vel := rotate(core.Vec{X: 1}, angle).Scale(g.rockSpeed(SizeLarge))
		g.rocks = append(g.rocks, Rock{Pos: g.rockSpawn(), Vel: vel, Size: SizeLarge})
	}
}

// rockSpawn picks a random point at least the safe distance from the ship.
func (g *Game) rockSpawn() core.Vec {
	minDist := g.cfg.Rocks.SafeDistance + g.cfg.Rocks.LargeRadius
	for range 32 {
		p := core.Vec{X: g.rng.Float64() * g.worldW, Y: g.rng.Float64() * g.worldH}
		if !core.CirclesOverlap(p, 0, g.ship.Pos, minDist, g.worldW, g.worldH) {
			return p
		}
	}
	// The point opposite the ship on the torus is as far as it gets
	return g.ship.Pos.Add(core.Vec{X: g.worldW / 2, Y: g.worldH / 2}).Wrap(g.worldW, g.worldH)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.wave,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
