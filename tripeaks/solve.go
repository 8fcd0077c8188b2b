package tripeaks

import (
	"github.com/mchung94/solitaire-player/deck"
	"github.com/mchung94/solitaire-player/search"
)

type problem struct {
	initial State
}

func (p problem) Initial() State        { return p.initial }
func (p problem) Terminal(s State) bool { return s.IsTableauEmpty() }

func (p problem) Successors(s State, buf []State) []State {
	return s.Successors(buf)
}

// Run searches the deal breadth-first and returns the raw search result.
// Unlike the Pyramid solver, the deck is validated here: NewState returns
// an error when the deck is not a standard 52-card deck.
func Run(d deck.Deck, conf search.Config) (*search.Result[State], error) {
	initial, err := NewState(d)
	if err != nil {
		return nil, err
	}
	return search.Run[State](problem{initial: initial}, conf), nil
}

// Solve returns a shortest sequence of cards to send to the waste pile that
// clears the tableau, or an empty sequence when the deal cannot be cleared.
func Solve(d deck.Deck) ([]deck.Card, error) {
	result, err := Run(d, search.Config{})
	if err != nil {
		return nil, err
	}
	return Moves(result.Path), nil
}

// Moves turns a state path from Run into the played card sequence: each
// state after the initial one records its move as its waste card.
func Moves(path []State) []deck.Card {
	if len(path) == 0 {
		return nil
	}
	cards := make([]deck.Card, 0, len(path)-1)
	for _, s := range path[1:] {
		cards = append(cards, s.waste)
	}
	return cards
}

// IsPlayable replays a solution against the deal and reports whether it
// clears the tableau: each card is drawn from the stock pile when it is the
// stock top, otherwise it must be a present tableau card whose rank is
// adjacent to the current waste card. An empty solution is playable.
func IsPlayable(d deck.Deck, solution []deck.Card) bool {
	if len(solution) == 0 {
		return true
	}
	var tableau [28]deck.Card
	copy(tableau[:], d[:28])
	waste := d[28]
	stock := d[29:]

	for _, card := range solution {
		if len(stock) > 0 && card == stock[0] {
			stock = stock[1:]
		} else {
			if !IsOneRankApart(card, waste) {
				return false
			}
			found := false
			for i, c := range tableau {
				if c == card {
					tableau[i] = removed
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		waste = card
	}
	for _, c := range tableau {
		if c != removed {
			return false
		}
	}
	return true
}
