// Package tripeaks solves TriPeaks Solitaire: find a shortest sequence of
// cards to send to the waste pile that removes all 28 tableau cards.
package tripeaks

import (
	"github.com/pkg/errors"

	"github.com/mchung94/solitaire-player/deck"
)

// removed marks an empty tableau slot.
const removed = deck.Card(0xFF)

// childIndexes lists the tableau positions directly under each card. A card
// is face up once every child slot is empty; the bottom row (18..27) has no
// children. The tableau is laid out:
//
//	       0           1           2
//	     3   4       5   6       7   8
//	   9  10  11  12  13  14  15  16  17
//	18  19  20  21  22  23  24  25  26  27
var childIndexes = [28][]int{
	{3, 4},
	{5, 6},
	{7, 8},
	{9, 10},
	{10, 11},
	{12, 13},
	{13, 14},
	{15, 16},
	{16, 17},
	{18, 19},
	{19, 20},
	{20, 21},
	{21, 22},
	{22, 23},
	{23, 24},
	{24, 25},
	{25, 26},
	{26, 27},
	{},
	{},
	{},
	{},
	{},
	{},
	{},
	{},
	{},
	{},
}

// IsOneRankApart reports whether the two cards' ranks are cyclically
// adjacent. Ranks wrap around, so King is next to Ace which is next to Two.
func IsOneRankApart(card1, card2 deck.Card) bool {
	diff := card1.RankIndex() - card2.RankIndex()
	if diff < 0 {
		diff = -diff
	}
	return diff == 1 || diff == 12
}

// State is a TriPeaks Solitaire position. States are plain comparable
// values so they can be predecessor map keys.
//
// The stock pile is stored as a string of card values with the top of the
// pile first; drawing slices the string, so successor states share the
// original deal's backing bytes instead of copying the pile.
type State struct {
	tableau [28]deck.Card
	stock   string
	waste   deck.Card
}

// NewState builds the starting position from a deal: deck indexes 0..27 are
// the tableau, index 28 starts the waste pile, and indexes 29..51 are the
// stock pile with index 29 on top. Returns an error when the deck is not a
// standard 52-card deck.
func NewState(d deck.Deck) (State, error) {
	var s State
	if !deck.IsStandard(d[:]) {
		return s, errors.Errorf("not a standard deck of cards: %s", d)
	}
	copy(s.tableau[:], d[:28])
	s.waste = d[28]
	stock := make([]byte, 0, 23)
	for _, c := range d[29:] {
		stock = append(stock, byte(c))
	}
	s.stock = string(stock)
	return s, nil
}

// Tableau returns the card at the tableau position, or false when the slot
// is empty.
func (s State) Tableau(i int) (deck.Card, bool) {
	c := s.tableau[i]
	return c, c != removed
}

// StockSize returns the number of cards left in the stock pile.
func (s State) StockSize() int { return len(s.stock) }

// WasteCard returns the card at the top of the waste pile.
func (s State) WasteCard() deck.Card { return s.waste }

// IsFaceUp reports whether the tableau card is face up: still present, with
// every slot under it empty. Only face-up cards can move to the waste pile.
func (s State) IsFaceUp(i int) bool {
	if s.tableau[i] == removed {
		return false
	}
	for _, child := range childIndexes[i] {
		if s.tableau[child] != removed {
			return false
		}
	}
	return true
}

// CanBeMoved reports whether the card can go on the waste pile: its rank
// must be one above or below the current waste card, wrapping K-A.
func (s State) CanBeMoved(c deck.Card) bool {
	return IsOneRankApart(s.waste, c)
}

// IsTableauEmpty reports whether every tableau card has been removed.
// This is the goal condition.
func (s State) IsTableauEmpty() bool {
	for _, c := range s.tableau {
		if c != removed {
			return false
		}
	}
	return true
}

// Successors appends every state reachable by one move: drawing from the
// stock pile when it has cards (always legal), and playing each face-up
// tableau card whose rank is adjacent to the waste card.
func (s State) Successors(buf []State) []State {
	if len(s.stock) > 0 {
		n := s
		n.waste = deck.Card(s.stock[0])
		n.stock = s.stock[1:]
		buf = append(buf, n)
	}
	for i, c := range s.tableau {
		if c != removed && s.IsFaceUp(i) && s.CanBeMoved(c) {
			n := s
			n.tableau[i] = removed
			n.waste = c
			buf = append(buf, n)
		}
	}
	return buf
}
