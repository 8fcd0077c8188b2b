// Package deck defines playing cards and standard 52-card decks.
//
// A card is a small integer identifying a (rank, suit) pair, so cards are
// cheap to copy, compare and hash, and game states can refer to cards by
// value without heap indirection. The textual form is a two-character token,
// rank character followed by suit character, e.g. "Ks" or "7d".
package deck

import (
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	ranks = "A23456789TJQK"
	suits = "cdhs"

	// Size is the number of cards in a standard deck.
	Size = 52
)

// Card identifies one of the 52 standard playing cards.
// Values are suit-major: Ac=0, 2c=1, ... Kc=12, Ad=13, ... Ks=51.
type Card uint8

// RankIndex returns the card's rank as a number from 0 (Ace) to 12 (King).
func (c Card) RankIndex() int { return int(c) % 13 }

// Rank returns the card's rank character, one of A23456789TJQK.
func (c Card) Rank() byte { return ranks[c%13] }

// Suit returns the card's suit character, one of cdhs.
func (c Card) Suit() byte { return suits[c/13] }

func (c Card) String() string { return string([]byte{c.Rank(), c.Suit()}) }

// Deck is an ordered standard deck. The order is significant: it defines the
// card indexes 0..51 that the solvers' state encodings refer to, so the same
// deck value must be used for state construction, successor generation and
// move labeling.
type Deck [Size]Card

func (d Deck) String() string {
	tokens := make([]string, Size)
	for i, c := range d {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

// Cards returns all 52 cards in suit-major order (clubs, diamonds, hearts,
// spades), Ace through King within each suit.
func Cards() []Card {
	cards := make([]Card, Size)
	for i := range cards {
		cards[i] = Card(i)
	}
	return cards
}

// ParseCard converts a two-character token into a Card. Tokens are case
// sensitive: ranks are uppercase, suits lowercase.
func ParseCard(token string) (Card, error) {
	if len(token) == 2 {
		r := strings.IndexByte(ranks, token[0])
		s := strings.IndexByte(suits, token[1])
		if r >= 0 && s >= 0 {
			return Card(s*13 + r), nil
		}
	}
	return 0, errors.Errorf("malformed card %q", token)
}

// Parse builds a Deck from 52 card tokens. On failure it returns an error
// aggregating every problem found: malformed tokens, wrong card count,
// missing cards and duplicated cards.
func Parse(tokens []string) (Deck, error) {
	var d Deck
	var errs *multierror.Error
	if len(tokens) != Size {
		errs = multierror.Append(errs,
			errors.Errorf("deck has %d cards, want %d", len(tokens), Size))
	}
	cards := make([]Card, 0, len(tokens))
	for _, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		cards = append(cards, c)
	}
	for _, c := range Missing(cards) {
		errs = multierror.Append(errs, errors.Errorf("missing card %s", c))
	}
	for _, c := range Duplicates(cards) {
		errs = multierror.Append(errs, errors.Errorf("duplicate card %s", c))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return d, errors.Wrap(err, "invalid deck")
	}
	copy(d[:], cards)
	return d, nil
}

// ParseString builds a Deck from a whitespace-separated string of 52 card
// tokens.
func ParseString(s string) (Deck, error) {
	return Parse(strings.Fields(s))
}

// Malformed returns the tokens that are not valid cards, in input order.
func Malformed(tokens []string) []string {
	var bad []string
	for _, token := range tokens {
		if _, err := ParseCard(token); err != nil {
			bad = append(bad, token)
		}
	}
	return bad
}

// Missing returns the standard cards absent from cards, in suit-major order.
func Missing(cards []Card) []Card {
	var have [Size]bool
	for _, c := range cards {
		if int(c) < Size {
			have[c] = true
		}
	}
	var missing []Card
	for i := 0; i < Size; i++ {
		if !have[i] {
			missing = append(missing, Card(i))
		}
	}
	return missing
}

// Duplicates returns the cards that appear more than once, in input order.
// A card duplicated N times appears N times in the result so the caller can
// tell how often it occurs.
func Duplicates(cards []Card) []Card {
	var counts [Size]int
	for _, c := range cards {
		if int(c) < Size {
			counts[c]++
		}
	}
	var dups []Card
	for _, c := range cards {
		if int(c) < Size && counts[c] > 1 {
			dups = append(dups, c)
		}
	}
	return dups
}

// IsStandard reports whether cards form a complete standard 52-card deck.
func IsStandard(cards []Card) bool {
	return len(cards) == Size && len(Missing(cards)) == 0
}
