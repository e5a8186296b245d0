package card

import (
	"math/rand"
)

// shuffler provides seed-based shuffling of tile slices.
type shuffler struct {
	rng *rand.Rand
}

// newShuffler creates a new instance of a shuffler
func newShuffler(rngSeed int64) *shuffler {
	return &shuffler{
		rng: rand.New(rand.NewSource(rngSeed)),
	}
}

// shuffleTiles shuffles a slice of tiles in place (Fisher-Yates).
func (s *shuffler) shuffleTiles(tiles []string) {
	for i := len(tiles) - 1; i >= 1; i-- {
		randomIndex := s.rng.Intn(i + 1)
		elementToSwap := tiles[i]
		tiles[i] = tiles[randomIndex]
		tiles[randomIndex] = elementToSwap
	}
}
