package pyramid

import (
	"math/bits"
	"strings"

	"github.com/mchung94/solitaire-player/deck"
	"github.com/mchung94/solitaire-player/search"
)

// problem adapts a deal to the search engine.
type problem struct {
	d *deck.Deck
}

func (p problem) Initial() State        { return InitialState }
func (p problem) Terminal(s State) bool { return s.IsTableauEmpty() }

func (p problem) Successors(s State, buf []State) []State {
	return s.Successors(p.d, buf)
}

// Run searches the deal breadth-first and returns the raw search result.
// The deck is not validated; garbage in, garbage out.
func Run(d deck.Deck, conf search.Config) *search.Result[State] {
	return search.Run[State](problem{d: &d}, conf)
}

// Solve returns a shortest sequence of move descriptions that clears the
// tableau, or an empty sequence when the deal cannot be cleared.
func Solve(d deck.Deck) []string {
	return Moves(d, Run(d, search.Config{}).Path)
}

// Moves turns a state path from Run into move descriptions: "Recycle",
// "Draw", "Remove Kd" or "Remove 6d and 7h". The transition between two
// consecutive states is classified by XOR-ing their encodings: a cycle
// change is a recycle, a deck flag change is a removal, anything else is a
// draw.
func Moves(d deck.Deck, path []State) []string {
	if len(path) == 0 {
		return nil
	}
	moves := make([]string, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		moves = append(moves, action(&d, path[i-1], path[i]))
	}
	return moves
}

func action(d *deck.Deck, s, next State) string {
	diff := uint64(s ^ next)
	switch {
	case diff>>58 != 0:
		return "Recycle"
	case diff&deckFlagsMask != 0:
		removed := diff & deckFlagsMask
		var cards []string
		for removed != 0 {
			i := bits.TrailingZeros64(removed)
			removed &= removed - 1
			cards = append(cards, d[i].String())
		}
		return "Remove " + strings.Join(cards, " and ")
	default:
		return "Draw"
	}
}
