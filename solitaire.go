// Package solitaire is the entry point for the Pyramid and TriPeaks
// solvers. It wraps the per-game packages with run statistics and shared
// configuration; callers that just want a solution can use pyramid.Solve or
// tripeaks.Solve directly.
package solitaire

import (
	"time"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"

	"github.com/mchung94/solitaire-player/deck"
	"github.com/mchung94/solitaire-player/pyramid"
	"github.com/mchung94/solitaire-player/search"
	"github.com/mchung94/solitaire-player/tripeaks"
)

// Config controls solver diagnostics.
type Config struct {
	// Logger receives search progress reports. Nil runs silently.
	Logger *zap.Logger

	// LogEvery is the number of expanded states between progress reports.
	// Zero disables progress reports.
	LogEvery uint64
}

func (c Config) searchConfig() search.Config {
	return search.Config{Logger: c.Logger, LogEvery: c.LogEvery}
}

// Stats describes a finished search.
type Stats struct {
	Expanded   uint64
	Enqueued   uint64
	Elapsed    time.Duration
	WorkingSet datasize.ByteSize
}

func stats[S comparable](r *search.Result[S]) Stats {
	return Stats{
		Expanded:   r.Expanded,
		Enqueued:   r.Enqueued,
		Elapsed:    r.Elapsed,
		WorkingSet: r.WorkingSet(),
	}
}

// PyramidResult is a Pyramid solver run: the move descriptions of a shortest
// solution (empty when the deal is unsolvable) plus search statistics.
type PyramidResult struct {
	Moves []string
	Stats Stats
}

// Solved reports whether the deal can be cleared.
func (r *PyramidResult) Solved() bool { return len(r.Moves) > 0 }

// SolvePyramid finds a shortest Pyramid Solitaire solution for the deal.
// The deck is not validated; use deck.Parse at the boundary.
func SolvePyramid(d deck.Deck, conf Config) *PyramidResult {
	result := pyramid.Run(d, conf.searchConfig())
	return &PyramidResult{
		Moves: pyramid.Moves(d, result.Path),
		Stats: stats(result),
	}
}

// TriPeaksResult is a TriPeaks solver run: the cards of a shortest solution
// in play order (empty when the deal is unsolvable) plus search statistics.
type TriPeaksResult struct {
	Cards []deck.Card
	Stats Stats
}

// Solved reports whether the deal can be cleared.
func (r *TriPeaksResult) Solved() bool { return len(r.Cards) > 0 }

// Moves renders the solution as move descriptions in the same shape as the
// Pyramid solver's output.
func (r *TriPeaksResult) Moves() []string {
	moves := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		moves[i] = c.String()
	}
	return moves
}

// SolveTriPeaks finds a shortest TriPeaks Solitaire solution for the deal.
// Returns an error when the deck is not a standard 52-card deck.
func SolveTriPeaks(d deck.Deck, conf Config) (*TriPeaksResult, error) {
	result, err := tripeaks.Run(d, conf.searchConfig())
	if err != nil {
		return nil, err
	}
	return &TriPeaksResult{
		Cards: tripeaks.Moves(result.Path),
		Stats: stats(result),
	}, nil
}
