package bot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marcus8448/hammer/internal/reversi"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Candidates - the moves a strategy proposes for one turn. The driver picks
// one and submits it through the rules engine, which re-validates it.
type Candidates struct {
	Moves []reversi.Move `json:"moves"`
}

// Strategy - a pluggable move chooser. timeLeft is the proposer's remaining
// clock in seconds; strategies may use it to bound their own work but the
// engine never enforces it. A strategy with no legal move returns empty
// Candidates, never an error.
type Strategy interface {
	CandidateMoves(board reversi.Board, player reversi.Cell, timeLeft float64) Candidates
}

var registry = map[string]func() Strategy{
	"random":     func() Strategy { return &randomStrategy{} },
	"greedy":     func() Strategy { return &greedyStrategy{} },
	"positional": func() Strategy { return newPositionalStrategy() },
}

// New - builds the strategy registered under name.
func New(name string) (Strategy, error) {
	construct, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return construct(), nil
}

// Names - the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
