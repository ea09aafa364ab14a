// Package oracle provides the reference scoring functions the table
// builder treats as its ground truth. An oracle is a pure, deterministic
// function from a complete hand to a Score; the builder never inspects how
// the score was produced, only whether two continuations agree on it.
package oracle

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"pokerphe/internal/hand"
)

// Score is the builder's 32-bit opaque label for a hand's strength: only
// equality and relative ordering between two scores from the same oracle
// are meaningful, never the raw value.
type Score = uint32

// Fn scores a complete hand. It must be deterministic and side-effect
// free, and must not rely on the order of h.Slice() beyond what hand.Hand
// already guarantees (sorted ascending).
type Fn func(h hand.Hand) Score

// Sum is a trivial oracle used by fast, exhaustive round-trip tests: the
// "score" is just the sum of the card indices. It has no poker meaning,
// but it is deterministic, cheap, and has a rich enough equivalence
// structure to exercise class fusion.
func Sum(h hand.Hand) Score {
	var total uint32
	for _, c := range h.Slice() {
		total += uint32(c)
	}
	return total
}

// toPokerCard maps a builder card index in [0, 52) onto a paulhankin/poker
// Card, using the same suit-major layout this corpus's engine.eval_ph
// already assumes for its own int-to-card convention: 13 consecutive
// ranks per suit, suits ordered clubs, diamonds, hearts, spades.
func toPokerCard(c hand.Card) poker.Card {
	suits := [4]poker.Suit{poker.Club, poker.Diamond, poker.Heart, poker.Spade}
	s := suits[c/13]
	// paulhankin/poker ranks run 1..13 (Ace low); builder card 0 is the
	// deuce of its suit, so rank = (c%13)+2, wrapping Ace (rank 14) to 1.
	r := c%13 + 2
	if r == 14 {
		r = 1
	}
	card, err := poker.MakeCard(s, poker.Rank(r))
	if err != nil {
		// Every value in [0, 52) maps to a legal (suit, rank) pair by
		// construction; a failure here means toPokerCard itself is wrong.
		panic(fmt.Sprintf("oracle: card %d did not map to a legal poker.Card: %v", c, err))
	}
	return card
}

// PaulHankin5 scores a 5-card hand with github.com/paulhankin/poker's
// Eval5. Larger library ranks are stronger hands; the builder treats
// scores as opaque labels and doesn't care about the direction of the
// ordering, so the raw rank is used as-is, widened to Score.
func PaulHankin5(h hand.Hand) Score {
	var cards [5]poker.Card
	for i, c := range h.Slice() {
		cards[i] = toPokerCard(c)
	}
	return Score(poker.Eval5(&cards))
}

// PaulHankin7 scores a 7-card hand with Eval7, the best-5-of-7 extension
// of the same library.
func PaulHankin7(h hand.Hand) Score {
	var cards [7]poker.Card
	for i, c := range h.Slice() {
		cards[i] = toPokerCard(c)
	}
	return Score(poker.Eval7(&cards))
}

// ForSize returns the reference oracle for the given terminal hand size,
// matching the mapping cmd/buildtables uses to produce tables/{bfs,dfs,veb}{5,7}.phe.
func ForSize(n uint8) (Fn, error) {
	switch n {
	case 5:
		return PaulHankin5, nil
	case 7:
		return PaulHankin7, nil
	default:
		return nil, fmt.Errorf("oracle: no reference evaluator for hand size %d", n)
	}
}
