package floor

import "fmt"

// Tile is one cell of the floor grid. Identity is the (Row, Col)
// position; Label and Category are rewritten when ownership transfers.
type Tile struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Position identifies a grid cell.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Entry is one row of tile source data used to seed the grid.
type Entry struct {
	Label    string
	Category string
}

// Grid is the row-major board of owned tiles. The cell count is fixed
// for the grid's lifetime; only tile labels and categories change.
type Grid struct {
	rows  int
	cols  int
	tiles []Tile
}

// NewGrid builds a rows×cols grid from source entries. A short source
// is cyclically repeated until the cell count is met, excess entries
// are truncated, and an empty source yields sequentially numbered
// placeholder tiles.
func NewGrid(rows, cols int, entries []Entry) *Grid {
	needed := rows * cols

	if len(entries) == 0 {
		entries = make([]Entry, needed)
		for i := range entries {
			entries[i] = Entry{
				Label:    fmt.Sprintf("Tile %d", i+1),
				Category: "Placeholder",
			}
		}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]Tile, 0, needed),
	}
	for i := 0; i < needed; i++ {
		e := entries[i%len(entries)]
		g.tiles = append(g.tiles, Tile{
			Row:      i / cols,
			Col:      i % cols,
			Label:    e.Label,
			Category: e.Category,
		})
	}
	return g
}

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid's column count.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of tiles (always rows × cols).
func (g *Grid) Len() int { return len(g.tiles) }

// TileAt returns the tile at the given position, or nil when the
// position is off the grid.
func (g *Grid) TileAt(row, col int) *Tile {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.tiles[row*g.cols+col]
}

// TileAtIndex returns the tile at the given row-major index, or nil
// when the index is out of range.
func (g *Grid) TileAtIndex(i int) *Tile {
	if i < 0 || i >= len(g.tiles) {
		return nil
	}
	return &g.tiles[i]
}

// Tiles returns a copy of all tiles in row-major order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Adjacent reports whether b is orthogonally adjacent to a
// (up/down/left/right, no diagonals).
func Adjacent(a, b Tile) bool {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// FindByLabel returns the first tile (row-major) carrying the given
// label, or nil when no tile does.
func (g *Grid) FindByLabel(label string) *Tile {
	for i := range g.tiles {
		if g.tiles[i].Label == label {
			return &g.tiles[i]
		}
	}
	return nil
}

// TransferOwnership rewrites the first tile labelled loserLabel with
// the winner's label and category. It is a no-op when either label is
// absent from the grid, and reports whether the transfer was applied.
func (g *Grid) TransferOwnership(winnerLabel, loserLabel string) bool {
	winner := g.FindByLabel(winnerLabel)
	if winner == nil {
		return false
	}
	loser := g.FindByLabel(loserLabel)
	if loser == nil {
		return false
	}
	loser.Label = winner.Label
	loser.Category = winner.Category
	return true
}

// OwnedBy returns the positions of every tile carrying the given
// label, in row-major order. The set grows across consecutive wins by
// the same contestant.
func (g *Grid) OwnedBy(label string) []Position {
	var out []Position
	for i := range g.tiles {
		if g.tiles[i].Label == label {
			out = append(out, Position{Row: g.tiles[i].Row, Col: g.tiles[i].Col})
		}
	}
	return out
}
