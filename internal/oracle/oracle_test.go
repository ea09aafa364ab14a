package oracle

import (
	"math/rand"
	"testing"

	poker "github.com/paulhankin/poker"

	"pokerphe/internal/hand"
)

func TestSumOracle(t *testing.T) {
	h := hand.New(0, 12, 25, 38, 51)
	if got, want := Sum(h), uint32(0+12+25+38+51); got != want {
		t.Fatalf("Sum(%v) = %d, want %d", h, got, want)
	}
}

func TestToPokerCardCoversWholeDeckWithoutPanicking(t *testing.T) {
	seen := map[poker.Card]bool{}
	for c := hand.Card(0); c < hand.DeckSize; c++ {
		pc := toPokerCard(c)
		if seen[pc] {
			t.Fatalf("card %d maps to a poker.Card already used by another card", c)
		}
		seen[pc] = true
	}
	if len(seen) != hand.DeckSize {
		t.Fatalf("expected %d distinct poker.Card values, got %d", hand.DeckSize, len(seen))
	}
}

// TestPaulHankin7EqualsMaxOverFiveCardSubsets checks the defining property
// of the 7-card oracle: its score must equal the best of the C(7,5)=21
// five-card sub-hands, exactly what PaulHankin5 would return for each.
// Exhaustive C(52,7) coverage (~133M hands) is well beyond a unit test's
// budget, so this checks a bounded random sample instead.
func TestPaulHankin7EqualsMaxOverFiveCardSubsets(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		h := randomSortedHand(r, 7)
		got := PaulHankin7(h)
		want := bestOfFiveCardSubsets(h)
		if got != want {
			t.Fatalf("PaulHankin7(%v) = %d, want max over 21 5-card sub-hands = %d", h, got, want)
		}
	}
}

// bestOfFiveCardSubsets scores every 5-card sub-hand of h with PaulHankin5
// and returns the best (smallest, per the library's own ranking) score.
func bestOfFiveCardSubsets(h hand.Hand) uint32 {
	cards := h.Slice()
	best := uint32(0)
	first := true
	var sub [5]hand.Card
	var choose func(start, k int)
	choose = func(start, k int) {
		if k == 5 {
			score := PaulHankin5(hand.New(sub[:]...))
			if first || score < best {
				best = score
				first = false
			}
			return
		}
		for i := start; i <= len(cards)-(5-k); i++ {
			sub[k] = cards[i]
			choose(i+1, k+1)
		}
	}
	choose(0, 0)
	return best
}

// randomSortedHand draws size distinct cards uniformly without replacement
// and returns them sorted ascending, matching hand.Hand's invariant.
func randomSortedHand(r *rand.Rand, size uint8) hand.Hand {
	deck := r.Perm(hand.DeckSize)
	cards := make([]hand.Card, size)
	for i := 0; i < int(size); i++ {
		cards[i] = hand.Card(deck[i])
	}
	for i := 1; i < len(cards); i++ {
		for j := i; j > 0 && cards[j-1] > cards[j]; j-- {
			cards[j-1], cards[j] = cards[j], cards[j-1]
		}
	}
	return hand.New(cards...)
}

func TestPaulHankin5IsDeterministic(t *testing.T) {
	h := hand.New(0, 1, 2, 3, 4)
	a := PaulHankin5(h)
	b := PaulHankin5(h)
	if a != b {
		t.Fatalf("PaulHankin5 is not deterministic: %d != %d", a, b)
	}
}

func TestForSizeRejectsUnsupportedSizes(t *testing.T) {
	if _, err := ForSize(6); err == nil {
		t.Fatalf("expected an error for hand size 6")
	}
}

func TestForSizeReturnsTheMatchingEvaluator(t *testing.T) {
	h5 := hand.New(0, 1, 2, 3, 4)
	fn5, err := ForSize(5)
	if err != nil {
		t.Fatalf("ForSize(5): %v", err)
	}
	if got, want := fn5(h5), PaulHankin5(h5); got != want {
		t.Fatalf("ForSize(5)(%v) = %d, want PaulHankin5's %d", h5, got, want)
	}

	h7 := hand.New(0, 1, 2, 3, 4, 5, 6)
	fn7, err := ForSize(7)
	if err != nil {
		t.Fatalf("ForSize(7): %v", err)
	}
	if got, want := fn7(h7), PaulHankin7(h7); got != want {
		t.Fatalf("ForSize(7)(%v) = %d, want PaulHankin7's %d", h7, got, want)
	}
}
