// Package tiles loads bingo tile phrases and checks them for duplicates and
// near-duplicates before any card is generated.
package tiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

// DefaultPath is the tile list read when no path is configured.
const DefaultPath = "tiles.txt"

// lineBreak is the escape a tile line can use to force a break inside its cell.
const lineBreak = `\n`

// byteOrderMark is dropped from the start of the file; some editors write it.
const byteOrderMark = "\ufeff"

// List is a de-duplicated set of tiles in first-seen order.
type List struct {
	// Tiles holds each distinct phrase once.
	Tiles []string
	// Duplicates holds every repeated phrase that was dropped from Tiles,
	// once per extra occurrence.
	Duplicates []string
}

// Len returns the number of distinct tiles.
func (l *List) Len() int {
	return len(l.Tiles)
}

// Load reads one tile per line from r.
func Load(r io.Reader) (*List, error) {
	list := &List{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for first := true; scanner.Scan(); first = false {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		tile := Normalize(line)
		if tile == "" {
			continue
		}
		if _, ok := seen[tile]; ok {
			list.Duplicates = append(list.Duplicates, tile)
			continue
		}
		seen[tile] = struct{}{}
		list.Tiles = append(list.Tiles, tile)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tiles: %w", err)
	}

	return list, nil
}

// LoadFile reads the tile list at path.
func LoadFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, bingoerrors.TilesFileNotFound(path).WithCause(err)
		}
		return nil, bingoerrors.Wrap(err, bingoerrors.ErrTiles, "failed to open tile list")
	}
	defer f.Close()

	list, err := Load(f)
	if err != nil {
		return nil, bingoerrors.Wrap(err, bingoerrors.ErrTiles, path)
	}
	return list, nil
}

// Normalize trims a raw line, expands the \n escape into a real newline and
// converts the result to Unicode NFC.
func Normalize(line string) string {
	tile := strings.TrimSpace(line)
	tile = strings.ReplaceAll(tile, lineBreak, "\n")
	return norm.NFC.String(tile)
}
