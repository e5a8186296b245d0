// Package card lays tiles out on 5x5 bingo cards, one card per player, with
// the center cell reserved for the free square.
package card

const (
	// Size is the number of rows and columns on a card.
	Size = 5

	// Center is the row and column index of the free square.
	Center = Size / 2

	// TilesPerCard is the number of tiles needed to fill a card. Every cell
	// except the center holds a tile.
	TilesPerCard = Size*Size - 1

	// DefaultFreeSquare is the text printed in the center cell.
	DefaultFreeSquare = "FREE SQUARE"
)

// Cell is a single square on a card.
type Cell struct {
	Text string `json:"text"`
	// Free is only set on the center cell.
	Free bool `json:"free"`
}

// Card is one player's grid. Cells are indexed [row][col].
type Card struct {
	Player string           `json:"player"`
	Cells  [Size][Size]Cell `json:"cells"`
}

// Cell returns the cell at the given zero-based row and column.
func (c *Card) Cell(row, col int) Cell {
	return c.Cells[row][col]
}

// FreeSquare returns the center cell.
func (c *Card) FreeSquare() Cell {
	return c.Cells[Center][Center]
}

// Tiles returns the card's tile texts in column-major order, the order they
// were placed in, skipping the free square.
func (c *Card) Tiles() []string {
	out := make([]string, 0, TilesPerCard)
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			if row == Center && col == Center {
				continue
			}
			out = append(out, c.Cells[row][col].Text)
		}
	}
	return out
}

// Rows returns the card's text row by row, free square included.
func (c *Card) Rows() [][]string {
	rows := make([][]string, Size)
	for r := range rows {
		rows[r] = make([]string, Size)
		for col := 0; col < Size; col++ {
			rows[r][col] = c.Cells[r][col].Text
		}
	}
	return rows
}
