package card

import (
	"strings"
	"time"

	bingoerrors "github.com/dbmrq/bingocard/internal/errors"
)

// Generator places shuffled tiles onto cards. A Generator is not safe for
// concurrent use; its random source advances with every card.
type Generator struct {
	shuffler   *shuffler
	freeSquare string
	seed       int64
}

// NewGenerator creates a Generator. A zero seed is replaced with one taken
// from the clock; any other seed makes generation reproducible.
func NewGenerator(seed int64, freeSquare string) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if freeSquare == "" {
		freeSquare = DefaultFreeSquare
	}
	return &Generator{
		shuffler:   newShuffler(seed),
		freeSquare: freeSquare,
		seed:       seed,
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate builds one card for player from tiles. tiles must hold at least
// TilesPerCard distinct entries; the slice itself is not modified.
func (g *Generator) Generate(player string, tiles []string) (*Card, error) {
	if strings.TrimSpace(player) == "" {
		return nil, bingoerrors.InvalidPlayerName(player, "name is empty")
	}
	if len(tiles) < TilesPerCard {
		return nil, bingoerrors.NotEnoughTiles(len(tiles), TilesPerCard)
	}

	shuffled := make([]string, len(tiles))
	copy(shuffled, tiles)
	g.shuffler.shuffleTiles(shuffled)

	c := &Card{Player: player}
	next := 0
	// Column-major fill, skipping the center.
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			if row == Center && col == Center {
				c.Cells[row][col] = Cell{Text: g.freeSquare, Free: true}
				continue
			}
			c.Cells[row][col] = Cell{Text: shuffled[next]}
			next++
		}
	}

	return c, nil
}

// GenerateAll builds one card per player, in order. Player names must be
// unique ignoring case.
func (g *Generator) GenerateAll(players []string, tiles []string) ([]*Card, error) {
	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		key := strings.ToLower(p)
		if _, ok := seen[key]; ok {
			return nil, bingoerrors.DuplicatePlayer(p)
		}
		seen[key] = struct{}{}
	}

	cards := make([]*Card, 0, len(players))
	for _, p := range players {
		c, err := g.Generate(p, tiles)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
