package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const allCardsString = "Ac 2c 3c 4c 5c 6c 7c 8c 9c Tc Jc Qc Kc " +
	"Ad 2d 3d 4d 5d 6d 7d 8d 9d Td Jd Qd Kd " +
	"Ah 2h 3h 4h 5h 6h 7h 8h 9h Th Jh Qh Kh " +
	"As 2s 3s 4s 5s 6s 7s 8s 9s Ts Js Qs Ks"

func allTokens() []string { return strings.Fields(allCardsString) }

func TestCardOrder(t *testing.T) {
	tokens := allTokens()
	require.Len(t, tokens, Size)
	for i, token := range tokens {
		assert.Equal(t, token, Card(i).String())
	}
}

func TestCardRankAndSuit(t *testing.T) {
	for i, token := range allTokens() {
		c := Card(i)
		assert.Equal(t, token[0], c.Rank())
		assert.Equal(t, token[1], c.Suit())
		assert.Equal(t, int(c)%13, c.RankIndex())
	}
}

func TestParseCard(t *testing.T) {
	for i, token := range allTokens() {
		c, err := ParseCard(token)
		require.NoError(t, err)
		assert.Equal(t, Card(i), c)
	}

	for _, token := range []string{"7S", "ks", "KS", "kS", "", "K", "Ks2", "10c", "xx"} {
		_, err := ParseCard(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := Card(rapid.IntRange(0, Size-1).Draw(t, "card"))
		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	})
}

func TestParse(t *testing.T) {
	d, err := Parse(allTokens())
	require.NoError(t, err)
	assert.Equal(t, allCardsString, d.String())
}

func TestParseAggregatesProblems(t *testing.T) {
	tokens := append([]string{"xx"}, allTokens()[2:]...)
	tokens = append(tokens, "Ks")
	_, err := Parse(tokens)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `malformed card "xx"`)
	assert.Contains(t, msg, "missing card Ac")
	assert.Contains(t, msg, "missing card 2c")
	assert.Contains(t, msg, "duplicate card Ks")
}

func TestParseString(t *testing.T) {
	d, err := ParseString("  " + allCardsString + "\n")
	require.NoError(t, err)
	assert.Equal(t, allCardsString, d.String())

	_, err = ParseString("Ac 2c")
	assert.Error(t, err)
}

func TestMalformed(t *testing.T) {
	assert.Empty(t, Malformed(allTokens()))
	input := []string{"7S", "ks", "KS", "kS", "", "10c", "Ks"}
	expected := []string{"7S", "ks", "KS", "kS", "", "10c"}
	assert.Equal(t, expected, Malformed(input))
}

func TestMissing(t *testing.T) {
	assert.Empty(t, Missing(Cards()))

	full := Missing(nil)
	require.Len(t, full, Size)
	for i, c := range full {
		assert.Equal(t, Card(i), c)
	}

	assert.Equal(t, []Card{0}, Missing(Cards()[1:]))
}

func TestDuplicates(t *testing.T) {
	assert.Empty(t, Duplicates(Cards()))

	ac := Card(0)
	assert.Equal(t, []Card{ac, ac}, Duplicates(append(Cards(), ac)))
	assert.Equal(t, []Card{ac, ac, ac}, Duplicates(append(Cards(), ac, ac)))
}

func TestIsStandard(t *testing.T) {
	assert.True(t, IsStandard(Cards()))
	assert.False(t, IsStandard(Cards()[1:]))
	assert.False(t, IsStandard(nil))
	assert.False(t, IsStandard(append(Cards(), Card(0))))
}

func TestAnyPermutationIsStandard(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		perm := rapid.SliceOfNDistinct(rapid.IntRange(0, Size-1), Size, Size, rapid.ID).Draw(t, "perm")
		cards := make([]Card, Size)
		for i, v := range perm {
			cards[i] = Card(v)
		}
		assert.True(t, IsStandard(cards))
		assert.Empty(t, Missing(cards))
		assert.Empty(t, Duplicates(cards))
	})
}
