package floor

import (
	"fmt"
	"testing"
)

func makeEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Label:    fmt.Sprintf("Player %d", i+1),
			Category: fmt.Sprintf("Category %d", i+1),
		}
	}
	return entries
}

func TestNewGridCellCount(t *testing.T) {
	cases := []struct {
		name    string
		rows    int
		cols    int
		entries int
	}{
		{"exact", 3, 3, 9},
		{"too few", 3, 3, 4},
		{"too many", 3, 3, 20},
		{"single entry", 3, 3, 1},
		{"empty source", 3, 3, 0},
		{"non-square", 2, 5, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.rows, tc.cols, makeEntries(tc.entries))
			if g.Len() != tc.rows*tc.cols {
				t.Errorf("Expected %d tiles, got %d", tc.rows*tc.cols, g.Len())
			}
		})
	}
}

func TestNewGridCyclicRepeat(t *testing.T) {
	g := NewGrid(3, 3, makeEntries(4))

	// Tile 5 (index 4) wraps back to the first entry.
	tile := g.TileAtIndex(4)
	if tile == nil {
		t.Fatal("Expected tile at index 4")
	}
	if tile.Label != "Player 1" {
		t.Errorf("Expected cyclic repeat to place 'Player 1' at index 4, got '%s'", tile.Label)
	}
}

func TestNewGridPlaceholders(t *testing.T) {
	g := NewGrid(3, 3, nil)

	first := g.TileAtIndex(0)
	if first.Label != "Tile 1" {
		t.Errorf("Expected placeholder label 'Tile 1', got '%s'", first.Label)
	}
	last := g.TileAtIndex(8)
	if last.Label != "Tile 9" {
		t.Errorf("Expected placeholder label 'Tile 9', got '%s'", last.Label)
	}
}

func TestNewGridRowMajorPositions(t *testing.T) {
	g := NewGrid(3, 3, makeEntries(9))

	seen := make(map[Position]bool)
	for _, tile := range g.Tiles() {
		pos := Position{Row: tile.Row, Col: tile.Col}
		if seen[pos] {
			t.Errorf("Duplicate position %+v", pos)
		}
		seen[pos] = true
	}
	if len(seen) != 9 {
		t.Errorf("Expected 9 distinct positions, got %d", len(seen))
	}
}

func TestAdjacent(t *testing.T) {
	a := Tile{Row: 1, Col: 1}

	cases := []struct {
		name string
		b    Tile
		want bool
	}{
		{"up", Tile{Row: 0, Col: 1}, true},
		{"down", Tile{Row: 2, Col: 1}, true},
		{"left", Tile{Row: 1, Col: 0}, true},
		{"right", Tile{Row: 1, Col: 2}, true},
		{"diagonal", Tile{Row: 0, Col: 0}, false},
		{"self", Tile{Row: 1, Col: 1}, false},
		{"two apart", Tile{Row: 1, Col: 3}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Adjacent(a, tc.b); got != tc.want {
				t.Errorf("Adjacent(%+v, %+v) = %v, want %v", a, tc.b, got, tc.want)
			}
			// Symmetry.
			if got := Adjacent(tc.b, a); got != tc.want {
				t.Errorf("Adjacent(%+v, %+v) = %v, want %v (not symmetric)", tc.b, a, got, tc.want)
			}
		})
	}
}

func TestTileAtOffGrid(t *testing.T) {
	g := NewGrid(3, 3, makeEntries(9))

	for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.TileAt(pos.Row, pos.Col) != nil {
			t.Errorf("Expected nil tile at off-grid position %+v", pos)
		}
	}
	if g.TileAt(2, 2) == nil {
		t.Error("Expected tile at (2,2)")
	}
}

func TestTransferOwnership(t *testing.T) {
	entries := makeEntries(9)
	entries[0] = Entry{Label: "Pop Music", Category: "pop"}
	entries[1] = Entry{Label: "Taylor Swift", Category: "taylor-swift"}
	g := NewGrid(3, 3, entries)

	if !g.TransferOwnership("Pop Music", "Taylor Swift") {
		t.Fatal("Expected transfer to apply")
	}

	tile := g.TileAt(0, 1)
	if tile.Label != "Pop Music" {
		t.Errorf("Expected loser tile relabelled 'Pop Music', got '%s'", tile.Label)
	}
	if tile.Category != "pop" {
		t.Errorf("Expected loser tile to take winner category 'pop', got '%s'", tile.Category)
	}

	owned := g.OwnedBy("Pop Music")
	if len(owned) != 2 {
		t.Errorf("Expected winner to own 2 tiles, got %d", len(owned))
	}
}

func TestTransferOwnershipMissingLabels(t *testing.T) {
	g := NewGrid(3, 3, makeEntries(9))
	before := g.Tiles()

	if g.TransferOwnership("Nobody", "Player 1") {
		t.Error("Expected no-op when winner label is absent")
	}
	if g.TransferOwnership("Player 1", "Nobody") {
		t.Error("Expected no-op when loser label is absent")
	}

	after := g.Tiles()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Tile %d changed by a failed transfer: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestTransferOwnershipIdempotentAfterLoserGone(t *testing.T) {
	entries := makeEntries(9)
	g := NewGrid(3, 3, entries)

	if !g.TransferOwnership("Player 1", "Player 2") {
		t.Fatal("Expected first transfer to apply")
	}
	snapshot := g.Tiles()

	// The loser label no longer exists, so reapplying changes nothing.
	if g.TransferOwnership("Player 1", "Player 2") {
		t.Error("Expected second transfer to be a no-op")
	}
	after := g.Tiles()
	for i := range snapshot {
		if snapshot[i] != after[i] {
			t.Errorf("Tile %d changed by repeated transfer", i)
		}
	}
}

func TestOwnedByGrowsAcrossWins(t *testing.T) {
	g := NewGrid(3, 3, makeEntries(9))

	g.TransferOwnership("Player 5", "Player 2")
	g.TransferOwnership("Player 5", "Player 4")

	owned := g.OwnedBy("Player 5")
	if len(owned) != 3 {
		t.Errorf("Expected territory of 3 tiles after two wins, got %d", len(owned))
	}
}
