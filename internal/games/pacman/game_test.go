package pacman

import (
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-classics/internal/config"
	"github.com/vovakirdan/arcade-classics/internal/core"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

// farCells keeps chasing ghosts well away from the bottom-left corner.
var farCells = []Point{{17, 1}, {1, 1}, {17, 20}, {9, 3}}

// testConfig is the default tuning with constant speeds.
func testConfig() config.PacmanConfig {
	cfg := config.DefaultPacmanConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.PacmanConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(testRuntime)
	return g
}

// playing skips the ready pause and puts every ghost out of the pen in chase.
func playing(g *Game, cells ...Point) {
	g.events.Clear()
	g.state = StatePlaying
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		gh.Actor = actorAt(cells[i])
		gh.Penned, gh.Leaving = false, false
		gh.Mode = ModeChase
		gh.decided = Point{-1, -1}
	}
}

func placePlayer(g *Game, p Point, d Direction) {
	g.player = actorAt(p)
	g.player.Dir, g.player.Next = d, d
	g.facing = d
}

// touch puts ghost i on top of the player.
func touch(g *Game, i int) {
	g.ghosts[i].X, g.ghosts[i].Y = g.player.X, g.player.Y
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepUntil steps with a fixed input until cond holds.
func stepUntil(t *testing.T, g *Game, in core.InputFrame, limit int, cond func() bool) {
	t.Helper()
	for range limit {
		if cond() {
			return
		}
		g.Step(in)
	}
	if !cond() {
		t.Fatalf("condition not reached within %d ticks (state=%s tick=%d)", limit, g.state, g.tick)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, testConfig())

	if g.state != StateReady {
		t.Errorf("state = %s, want %s", g.state, StateReady)
	}
	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.Level != 1 || st.GameOver {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if g.maze.PelletsLeft() != 152 {
		t.Errorf("PelletsLeft() = %d, want 152", g.maze.PelletsLeft())
	}
	if len(g.ghosts) != 4 {
		t.Fatalf("ghosts = %d, want 4", len(g.ghosts))
	}
	for i, gh := range g.ghosts {
		if !gh.Penned || gh.Mode != ModeChase {
			t.Errorf("ghost %d should start penned in chase, got penned=%v mode=%v", i, gh.Penned, gh.Mode)
		}
	}
}

func TestReadyThenRelease(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	none := input()

	for range cfg.Timing.ReadyDelay - 1 {
		g.Step(none)
	}
	if g.state != StateReady {
		t.Fatalf("state = %s before the ready delay ends", g.state)
	}
	if g.player.X != float64(9*TileSize) {
		t.Error("player should not move during the ready pause")
	}

	g.Step(none)
	if g.state != StatePlaying {
		t.Fatalf("state = %s, want playing", g.state)
	}
	if g.ghosts[0].Penned || !g.ghosts[0].Leaving {
		t.Error("first ghost should be released at the start signal")
	}
	if !g.ghosts[1].Penned {
		t.Error("second ghost should still be penned")
	}

	for range cfg.Timing.ReleaseInterval {
		g.Step(none)
	}
	if g.ghosts[1].Penned {
		t.Error("second ghost should be released one interval later")
	}
}

func TestGhostLeavesPenThroughDoor(t *testing.T) {
	g := newTestGame(t, testConfig())
	stepUntil(t, g, input(), 200, func() bool { return g.state == StatePlaying })

	gh := &g.ghosts[0]
	stepUntil(t, g, input(), 200, func() bool { return !gh.Leaving })
	if gh.Cell(g.maze) != g.maze.Home {
		t.Errorf("ghost finished leaving at %v, want home %v", gh.Cell(g.maze), g.maze.Home)
	}
}

func TestPowerPelletScenario(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	placePlayer(g, Point{2, 16}, DirLeft)

	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(1, 16) != CellPower })

	if g.score != cfg.Gameplay.PelletPoints+cfg.Gameplay.PowerPoints {
		t.Errorf("score = %d, want %d", g.score, cfg.Gameplay.PelletPoints+cfg.Gameplay.PowerPoints)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != ModeFrightened {
			t.Errorf("ghost %d mode = %v, want frightened", i, gh.Mode)
		}
	}
	if g.frightenedLeft != cfg.Timing.FrightenedTicks-1 {
		t.Errorf("frightenedLeft = %d, want %d", g.frightenedLeft, cfg.Timing.FrightenedTicks-1)
	}

	before := g.score
	touch(g, 0)
	g.Step(input())

	if g.score != before+200 {
		t.Errorf("score = %d, want %d", g.score, before+200)
	}
	if g.ghosts[0].Mode != ModeEaten {
		t.Errorf("touched ghost mode = %v, want eaten", g.ghosts[0].Mode)
	}
	for i := 1; i < len(g.ghosts); i++ {
		if g.ghosts[i].Mode != ModeFrightened {
			t.Errorf("ghost %d mode = %v, want frightened", i, g.ghosts[i].Mode)
		}
	}
	if g.lives != cfg.Gameplay.Lives {
		t.Error("eating a ghost must not cost a life")
	}
}

func TestGhostComboSequence(t *testing.T) {
	g := newTestGame(t, testConfig())
	playing(g, farCells...)
	placePlayer(g, Point{2, 16}, DirLeft)
	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(1, 16) != CellPower })

	for i, want := range []int{200, 400, 800, 1600} {
		before := g.score
		touch(g, i)
		g.Step(input())
		if got := g.score - before; got != want {
			t.Errorf("ghost %d awarded %d, want %d", i, got, want)
		}
	}

	// A new window restarts the sequence
	g.ghosts = g.ghosts[:1]
	playing(g, farCells[0])
	placePlayer(g, Point{16, 16}, DirRight)
	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(17, 16) != CellPower })

	if g.combo != 0 {
		t.Errorf("combo = %d after a new power pellet, want 0", g.combo)
	}
	before := g.score
	touch(g, 0)
	g.Step(input())
	if got := g.score - before; got != 200 {
		t.Errorf("first ghost of new window awarded %d, want 200", got)
	}
}

func TestGhostPointsCapAtLastValue(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.combo = 10
	g.eatGhost(&g.ghosts[0])
	if g.score != 1600 {
		t.Errorf("score = %d, want 1600", g.score)
	}
}

func TestFrightenedExpires(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.FrightenedSpeed = 0
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	placePlayer(g, Point{2, 16}, DirLeft)
	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(1, 16) != CellPower })

	for range cfg.Timing.FrightenedTicks - 2 {
		g.Step(input())
	}
	if g.frightenedLeft != 1 {
		t.Fatalf("frightenedLeft = %d, want 1", g.frightenedLeft)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != ModeFrightened {
			t.Fatalf("ghost %d left frightened early", i)
		}
	}

	g.Step(input())
	if g.frightenedLeft != 0 {
		t.Errorf("frightenedLeft = %d, want 0", g.frightenedLeft)
	}
	for i, gh := range g.ghosts {
		if gh.Mode != ModeChase {
			t.Errorf("ghost %d mode = %v, want chase", i, gh.Mode)
		}
	}
}

func TestPowerPelletRestartsWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.FrightenedSpeed = 0
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	placePlayer(g, Point{2, 16}, DirLeft)
	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(1, 16) != CellPower })

	for range 100 {
		g.Step(input())
	}
	placePlayer(g, Point{16, 16}, DirRight)
	stepUntil(t, g, input(), 30, func() bool { return g.maze.At(17, 16) != CellPower })

	if g.frightenedLeft != cfg.Timing.FrightenedTicks-1 {
		t.Errorf("frightenedLeft = %d, want a fresh window of %d", g.frightenedLeft, cfg.Timing.FrightenedTicks-1)
	}
}

func TestFrightenedWindowShrinksPerLevel(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)

	g.level = 3
	if got, want := g.frightenedTicks(), cfg.Timing.FrightenedTicks-2*cfg.Timing.FrightenedStep; got != want {
		t.Errorf("level 3 window = %d, want %d", got, want)
	}
	g.level = 100
	if got := g.frightenedTicks(); got != cfg.Timing.MinFrightenedTicks {
		t.Errorf("level 100 window = %d, want floor %d", got, cfg.Timing.MinFrightenedTicks)
	}
}

func TestEatenGhostReturnsHome(t *testing.T) {
	g := newTestGame(t, testConfig())
	playing(g, farCells...)

	gh := &g.ghosts[0]
	gh.Actor = actorAt(Point{6, 7})
	gh.Mode = ModeEaten

	stepUntil(t, g, input(), 60, func() bool { return gh.Mode != ModeEaten })

	if gh.Mode != ModeChase {
		t.Errorf("mode = %v, want chase", gh.Mode)
	}
	if gh.Cell(g.maze) != g.maze.Home {
		t.Errorf("ghost recovered at %v, want home %v", gh.Cell(g.maze), g.maze.Home)
	}
}

func TestLoseLifeKeepsPellets(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	placePlayer(g, Point{2, 16}, DirLeft)
	g.Step(input())
	g.Step(input())
	pellets := g.maze.PelletsLeft()

	touch(g, 0)
	g.Step(input())

	if g.lives != cfg.Gameplay.Lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, cfg.Gameplay.Lives-1)
	}
	if g.state != StateReady {
		t.Errorf("state = %s, want %s", g.state, StateReady)
	}
	if g.maze.PelletsLeft() > pellets {
		t.Errorf("pellets came back: %d > %d", g.maze.PelletsLeft(), pellets)
	}
	if g.player.Cell(g.maze) != g.maze.PlayerSpawn {
		t.Errorf("player at %v, want spawn", g.player.Cell(g.maze))
	}
	for i, gh := range g.ghosts {
		if !gh.Penned || gh.Mode != ModeChase {
			t.Errorf("ghost %d should be back in the pen", i)
		}
	}

	for range cfg.Timing.RespawnDelay {
		g.Step(input())
	}
	if g.state != StatePlaying {
		t.Errorf("state = %s after respawn delay, want playing", g.state)
	}
}

func TestGameOverIsInert(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	touch(g, 0)
	g.Step(input())

	st := g.State()
	if !st.GameOver || st.Lives != 0 {
		t.Fatalf("want game over with 0 lives, got %+v", st)
	}

	snap := g.Snapshot()
	inputs := []core.InputFrame{
		input(), input(core.ActionLeft), input(core.ActionPause), input(core.ActionFire), input(core.ActionUp),
	}
	for i := range 100 {
		g.Step(inputs[i%len(inputs)])
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("game over state changed without a restart")
	}

	g.Step(input(core.ActionRestart))
	st = g.State()
	if st.GameOver || st.Score != 0 || st.Lives != 1 || st.Level != 1 {
		t.Errorf("restart should start a fresh game, got %+v", st)
	}
	if g.state != StateReady {
		t.Errorf("state = %s after restart, want %s", g.state, StateReady)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, testConfig())
	stepUntil(t, g, input(), 200, func() bool { return g.state == StatePlaying })

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	snap := g.Snapshot()
	for range 30 {
		g.Step(input(core.ActionRight))
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused game advanced")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("expected resumed")
	}
}

func TestLevelClear(t *testing.T) {
	cfg := testConfig()
	g := NewWithConfig(cfg)
	g.layout = []string{
		"#######",
		"#P.  H#",
		"#######",
	}
	g.Reset(testRuntime)

	right := input(core.ActionRight)
	stepUntil(t, g, right, 200, func() bool { return g.state == StateLevelClear })

	if g.score != cfg.Gameplay.PelletPoints {
		t.Errorf("score = %d, want %d", g.score, cfg.Gameplay.PelletPoints)
	}

	stepUntil(t, g, right, cfg.Timing.LevelClearDelay+1, func() bool { return g.level == 2 })
	if g.state != StateReady {
		t.Errorf("state = %s on the new level, want %s", g.state, StateReady)
	}
	if g.maze.PelletsLeft() != 1 {
		t.Errorf("PelletsLeft() = %d, want the maze repopulated", g.maze.PelletsLeft())
	}
	if g.score != cfg.Gameplay.PelletPoints || g.lives != cfg.Gameplay.Lives {
		t.Error("score and lives carry over to the next level")
	}
}

func TestGameDeterminism(t *testing.T) {
	dirs := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	run := func() Snapshot {
		g := newTestGame(t, config.DefaultPacmanConfig())
		for i := range 3000 {
			in := input(dirs[(i/37)%len(dirs)])
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("score/tick differ: %d/%d vs %d/%d", snap1.Score, snap1.Tick, snap2.Score, snap2.Tick)
	}
}

func TestWallsAndPelletsOverLongRun(t *testing.T) {
	g := newTestGame(t, config.DefaultPacmanConfig())
	rng := core.NewRNG(99)
	dirs := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	level, pellets := g.level, g.maze.PelletsLeft()
	for i := range 8000 {
		in := input()
		if rng.Intn(8) == 0 {
			in.Set(dirs[rng.Intn(len(dirs))])
		}
		if g.State().GameOver {
			in.Set(core.ActionRestart)
		}
		g.Step(in)

		if overlapsWall(g.maze, g.player.X, g.player.Y) {
			t.Fatalf("tick %d: player overlaps a wall at (%v,%v)", i, g.player.X, g.player.Y)
		}
		for j := range g.ghosts {
			gh := &g.ghosts[j]
			if overlapsWall(gh.grid(g.maze), gh.X, gh.Y) {
				t.Fatalf("tick %d: ghost %d overlaps a wall at (%v,%v)", i, j, gh.X, gh.Y)
			}
		}

		left := g.maze.PelletsLeft()
		if g.level != level || g.tick == 0 {
			level, pellets = g.level, left
			continue
		}
		if left > pellets {
			t.Fatalf("tick %d: pellets went up from %d to %d", i, pellets, left)
		}
		pellets = left
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.SetHighScore(5000)
	screen := core.NewScreen(80, 24)

	before := g.Snapshot()
	g.Render(screen)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render mutated the game")
	}

	out := screen.String()
	for _, want := range []string{"SCORE 0", "HI 5000", "READY!", "L1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if !strings.ContainsRune(out, playerGlyphs[DirLeft]) {
		t.Error("render missing the player")
	}
}

func TestRenderGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, cfg)
	playing(g, farCells...)
	touch(g, 0)
	g.Step(input())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	g.Step(input())
	if g.tick != 0 {
		t.Error("game should not advance on a screen that is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a window size message")
	}
}
