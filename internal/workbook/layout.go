// Package workbook renders bingo cards into an .xlsx workbook, one worksheet
// per player, using excelize.
package workbook

const (
	// DefaultTitle prefixes the header above every card.
	DefaultTitle = "SUMO BINGO!"

	// DefaultOutputPath is where the workbook is saved when no path is set.
	DefaultOutputPath = "bingo.xlsx"

	// headerRow is the 1-based row holding the merged header.
	headerRow = 2
	// firstCardRow is the 1-based row of the card's top edge.
	firstCardRow = headerRow + 1
	// firstCardCol is the 1-based column of the card's left edge (B).
	firstCardCol = 2

	// cellPixels is both the width and the height of a card cell.
	cellPixels = 150

	// pageMargin is applied to every page edge, in inches.
	pageMargin = 0.2

	borderColor      = "333333"
	freeFillColor    = "222222"
	freeFontColor    = "FFFFFF"
	borderMedium     = 2
	fillPatternSolid = 1
)

// columnWidth converts a pixel width into the character units excelize uses,
// assuming the default 7px digit width and 5px padding.
func columnWidth(pixels int) float64 {
	return float64(pixels-5) / 7
}

// rowHeight converts a pixel height into points.
func rowHeight(pixels int) float64 {
	return float64(pixels) * 0.75
}
