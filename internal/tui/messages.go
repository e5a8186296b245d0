package tui

import "github.com/dbmrq/bingocard/internal/card"

// ReshuffledMsg carries freshly generated cards after a reshuffle.
type ReshuffledMsg struct {
	Cards []*card.Card
	Seed  int64
	Err   error
}
