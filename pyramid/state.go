// Package pyramid solves Pyramid Solitaire: find a shortest sequence of
// moves that removes all 28 tableau cards, with three passes through the
// stock pile allowed.
package pyramid

import (
	"github.com/mchung94/solitaire-player/deck"
)

// State is a complete Pyramid Solitaire position packed into 60 bits.
//
// The state refers to cards by their index in the deal, without holding a
// reference to the deck, so the deck must be passed alongside states to
// interpret them. The layout:
//
//	bits  0-51: deck flags - bit i is set while deck card i is in play
//	bits 52-57: stock index - index of the top stock card, 28..52;
//	            52 means the stock pile is empty. Cards above this index
//	            are the rest of the stock, cards below it (and above 27)
//	            are the waste pile, so drawing a card is just an increment.
//	bits 58-59: how many times the waste pile has been recycled, 0..2
type State uint64

const (
	// EmptyStock is the stock index value meaning the stock pile is empty.
	EmptyStock = 52

	// EmptyWaste is the waste index value meaning the waste pile is empty.
	EmptyWaste = 27

	// InitialState is the start of every game: all 52 cards in play, the
	// stock starting at deck index 28, no recycles yet.
	InitialState State = (28 << 52) | (1<<52 - 1)

	deckFlagsMask = 1<<52 - 1
	tableauMask   = 1<<28 - 1
)

// uncoveredMasks[i] has bit i set plus the bits of every tableau card
// covering card i from below. Card i is uncovered when masking the deck
// flags with uncoveredMasks[i] leaves exactly bit i.
var uncoveredMasks = [28]uint64{
	0b1111111111111111111111111111,
	0b0111111011111011110111011010,
	0b1111110111110111101110110100,
	0b0011111001111001110011001000,
	0b0111110011110011100110010000,
	0b1111100111100111001100100000,
	0b0001111000111000110001000000,
	0b0011110001110001100010000000,
	0b0111100011100011000100000000,
	0b1111000111000110001000000000,
	0b0000111000011000010000000000,
	0b0001110000110000100000000000,
	0b0011100001100001000000000000,
	0b0111000011000010000000000000,
	0b1110000110000100000000000000,
	0b0000011000001000000000000000,
	0b0000110000010000000000000000,
	0b0001100000100000000000000000,
	0b0011000001000000000000000000,
	0b0110000010000000000000000000,
	0b1100000100000000000000000000,
	0b0000001000000000000000000000,
	0b0000010000000000000000000000,
	0b0000100000000000000000000000,
	0b0001000000000000000000000000,
	0b0010000000000000000000000000,
	0b0100000000000000000000000000,
	0b1000000000000000000000000000,
}

// Value returns the card's numeric value in Pyramid Solitaire.
// Aces are always 1, Jacks 11, Queens 12 and Kings 13.
func Value(c deck.Card) int {
	return c.RankIndex() + 1
}

// DeckFlags returns the 52 in-play bits.
func (s State) DeckFlags() uint64 { return uint64(s) & deckFlagsMask }

// StockIndex returns the deck index of the top stock card, or EmptyStock.
func (s State) StockIndex() int { return int(s>>52) & 0b111111 }

// Cycle returns how many times the waste pile has been recycled.
func (s State) Cycle() int { return int(s>>58) & 0b11 }

// IsTableauEmpty reports whether all 28 tableau cards have been removed.
// This is the goal condition.
func (s State) IsTableauEmpty() bool { return uint64(s)&tableauMask == 0 }

// WasteIndex returns the deck index of the top waste card, or EmptyWaste.
// It is the highest in-play index below the stock index and above 27.
func (s State) WasteIndex() int {
	index := s.StockIndex() - 1
	for index > EmptyWaste && uint64(s)&(1<<uint(index)) == 0 {
		index--
	}
	return index
}

// canonicalize advances the stock index past removed cards so that every
// position has exactly one encoding. Without this, two encodings of the same
// position (one pointing at the real top stock card, one at a card that is
// gone) would both live in the predecessor map.
func (s State) canonicalize() State {
	index := s.StockIndex()
	rest := uint64(s) &^ (uint64(0b111111) << 52)
	for index < EmptyStock && rest&(1<<uint(index)) == 0 {
		index++
	}
	return State(rest | uint64(index)<<52)
}

// uncoveredIndexes appends the deck indexes of uncovered tableau cards:
// cards still in play with nothing left covering them from below.
func uncoveredIndexes(deckFlags uint64, buf []int) []int {
	flags := deckFlags & tableauMask
	for i := 0; i < 28; i++ {
		if flags&uncoveredMasks[i] == 1<<uint(i) {
			buf = append(buf, i)
		}
	}
	return buf
}

// Successors appends every state reachable from s by one move. The moves,
// when applicable:
//
//  1. Recycle the waste pile.
//  2. Draw a card from the stock pile to the waste pile.
//  3. Remove a King from the tableau.
//  4. Remove a King from the stock pile.
//  5. Remove a King from the waste pile.
//  6. Remove a pair of tableau cards adding to 13.
//  7. Remove a tableau card with the stock card.
//  8. Remove a tableau card with the waste card.
//  9. Remove the stock and waste cards together.
//
// The tableau pair loop visits unordered pairs from both sides; the search's
// de-duplication absorbs the repeats. Every emitted state is canonical.
func (s State) Successors(d *deck.Deck, buf []State) []State {
	flags := s.DeckFlags()
	stockIndex := s.StockIndex()
	wasteIndex := s.WasteIndex()
	cycle := s.Cycle()

	var scratch [28]int
	uncovered := uncoveredIndexes(flags, scratch[:0])

	create := func(flags uint64, stockIndex, cycle int) State {
		n := State(uint64(cycle)<<58 | uint64(stockIndex)<<52 | flags)
		return n.canonicalize()
	}

	hasStock := stockIndex != EmptyStock
	hasWaste := wasteIndex != EmptyWaste
	var stockValue, wasteValue int
	if hasStock {
		stockValue = Value(d[stockIndex])
	}
	if hasWaste {
		wasteValue = Value(d[wasteIndex])
	}

	if !hasStock && cycle < 2 {
		buf = append(buf, create(flags, 28, cycle+1))
	}
	if hasStock {
		buf = append(buf, create(flags, stockIndex+1, cycle))
		if stockValue == 13 {
			buf = append(buf, create(flags^(1<<uint(stockIndex)), stockIndex, cycle))
		}
	}
	if hasWaste && wasteValue == 13 {
		buf = append(buf, create(flags^(1<<uint(wasteIndex)), stockIndex, cycle))
	}
	if hasStock && hasWaste && stockValue+wasteValue == 13 {
		removed := flags ^ (1 << uint(stockIndex)) ^ (1 << uint(wasteIndex))
		buf = append(buf, create(removed, stockIndex, cycle))
	}
	for _, i := range uncovered {
		value := Value(d[i])
		if value == 13 {
			buf = append(buf, create(flags^(1<<uint(i)), stockIndex, cycle))
			continue
		}
		if hasStock && value+stockValue == 13 {
			removed := flags ^ (1 << uint(i)) ^ (1 << uint(stockIndex))
			buf = append(buf, create(removed, stockIndex, cycle))
		}
		if hasWaste && value+wasteValue == 13 {
			removed := flags ^ (1 << uint(i)) ^ (1 << uint(wasteIndex))
			buf = append(buf, create(removed, stockIndex, cycle))
		}
		for _, j := range uncovered {
			if value+Value(d[j]) == 13 {
				removed := flags ^ (1 << uint(i)) ^ (1 << uint(j))
				buf = append(buf, create(removed, stockIndex, cycle))
			}
		}
	}
	return buf
}
