package pacman

import "testing"

func TestParseDefaultMaze(t *testing.T) {
	m := MustParseMaze(DefaultLayout)

	if m.Width() != 19 || m.Height() != 22 {
		t.Fatalf("size = %dx%d, want 19x22", m.Width(), m.Height())
	}
	if m.PelletsLeft() != 152 {
		t.Errorf("PelletsLeft() = %d, want 152", m.PelletsLeft())
	}
	if len(m.GhostSpawns) != 4 {
		t.Errorf("ghost spawns = %d, want 4", len(m.GhostSpawns))
	}
	if m.PlayerSpawn != (Point{9, 16}) {
		t.Errorf("PlayerSpawn = %v, want {9 16}", m.PlayerSpawn)
	}
	if m.Home != (Point{9, 7}) {
		t.Errorf("Home = %v, want {9 7}", m.Home)
	}
	if m.At(9, 8) != CellDoor {
		t.Errorf("At(9,8) = %v, want door", m.At(9, 8))
	}
}

func TestParseMazeErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"ragged", []string{"#####", "#P H", "#####"}},
		{"no player", []string{"#####", "#. H#", "#####"}},
		{"no home", []string{"#####", "#P. #", "#####"}},
		{"unknown cell", []string{"#####", "#PxH#", "#####"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseMaze(tt.layout); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMazeWallsWrapColumns(t *testing.T) {
	m := MustParseMaze(DefaultLayout)

	// Row 9 is the tunnel
	if m.IsWall(-1, 9) || m.IsWall(19, 9) {
		t.Error("tunnel ends should be open")
	}
	if m.IsWall(-1, 9) != m.IsWall(18, 9) {
		t.Error("column -1 should read column 18")
	}
	if !m.IsWall(19, 1) {
		t.Error("column 19 should read column 0 (wall)")
	}
	if !m.IsWall(5, -1) || !m.IsWall(5, 22) {
		t.Error("rows outside the grid should be walls")
	}
}

func TestMazeDoorBlocksPlayerOnly(t *testing.T) {
	m := MustParseMaze(DefaultLayout)
	if !m.Blocked(9, 8) {
		t.Error("door should block the player grid")
	}
	if (penGrid{m}).Blocked(9, 8) {
		t.Error("door should be open on the pen grid")
	}
	if !(penGrid{m}).Blocked(0, 0) {
		t.Error("walls stay blocked on the pen grid")
	}
}

func TestMazeEat(t *testing.T) {
	m := MustParseMaze(DefaultLayout)
	start := m.PelletsLeft()

	if got := m.Eat(1, 1); got != CellPellet {
		t.Errorf("Eat(1,1) = %v, want pellet", got)
	}
	if got := m.Eat(1, 1); got != CellEmpty {
		t.Errorf("second Eat(1,1) = %v, want empty", got)
	}
	if got := m.Eat(1, 2); got != CellPower {
		t.Errorf("Eat(1,2) = %v, want power pellet", got)
	}
	if got := m.Eat(0, 0); got != CellEmpty {
		t.Errorf("Eat on wall = %v, want empty", got)
	}
	if m.PelletsLeft() != start-2 {
		t.Errorf("PelletsLeft() = %d, want %d", m.PelletsLeft(), start-2)
	}
	if m.IsWall(0, 0) == false {
		t.Error("eating must not clear walls")
	}
}

func TestMazeString(t *testing.T) {
	m := MustParseMaze([]string{"#####", "#Po.#", "# H-#", "#####"})
	want := "#####\n# o.#\n#  -#\n#####\n"
	if got := m.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
