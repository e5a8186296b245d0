package errors

import "fmt"

// TilesFileNotFound creates an error for a missing tile list.
func TilesFileNotFound(path string) *BingoError {
	return &BingoError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("tile list not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Create a tile list with one phrase per line:

  echo "Someone says 'synergy'" >> tiles.txt

Use \n inside a line to force a line break in the cell.
Point at a different file with --tiles PATH.`,
	}
}

// NotEnoughTiles creates an error when the tile list cannot fill a card.
func NotEnoughTiles(have, need int) *BingoError {
	return &BingoError{
		Kind:    ErrTiles,
		Message: fmt.Sprintf("not enough tiles: have %d unique, need %d", have, need),
		Details: map[string]string{
			"have": fmt.Sprintf("%d", have),
			"need": fmt.Sprintf("%d", need),
		},
		Suggestion: fmt.Sprintf("Add at least %d more distinct phrases to the tile list.", need-have),
	}
}

// SimilarTilesFound creates an error when strict checking rejects the tile set.
func SimilarTilesFound(duplicates, similar, limit int) *BingoError {
	return &BingoError{
		Kind:    ErrTiles,
		Message: fmt.Sprintf("tile check failed: %d duplicate and %d similar pairs", duplicates, similar),
		Details: map[string]string{
			"duplicates":     fmt.Sprintf("%d", duplicates),
			"similar":        fmt.Sprintf("%d", similar),
			"distance_limit": fmt.Sprintf("%d", limit),
		},
		Suggestion: `Reword or remove the reported tiles, or:
  • lower the limit with --dist N
  • drop --strict to generate anyway`,
	}
}
