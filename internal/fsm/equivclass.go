package fsm

import "pokerphe/internal/hand"

// classIndex references an equivalenceClass by position in the current
// size's master list. notFound marks "no match".
type classIndex = int32

const notFound classIndex = -1

// equivalenceClass is a set of hands of one size that share a compatible
// edge set, plus the edges merged across every hand added so far.
type equivalenceClass struct {
	hands []hand.Encoded
	edges Edges
}

// flatSet is a small, insert-rare, iterate-often set of classIndex
// values. Linear dedup is fine: the number of classes sharing a single
// (card, target) pair stays small in practice.
type flatSet []classIndex

func (s *flatSet) insert(v classIndex) {
	for _, x := range *s {
		if x == v {
			return
		}
	}
	*s = append(*s, v)
}

// hintIndex maps (card, target) to the classes that already have that
// exact transition, so a new hand's candidate classes can be found without
// scanning every class built so far for this size.
type hintIndex struct {
	byCard [hand.DeckSize]map[HandOrScore]*flatSet
}

func newHintIndex() *hintIndex {
	h := &hintIndex{}
	for i := range h.byCard {
		h.byCard[i] = make(map[HandOrScore]*flatSet)
	}
	return h
}

func (h *hintIndex) candidates(card hand.Card, target HandOrScore) flatSet {
	s, ok := h.byCard[card][target]
	if !ok {
		return nil
	}
	return *s
}

func (h *hintIndex) add(card hand.Card, target HandOrScore, idx classIndex) {
	s, ok := h.byCard[card][target]
	if !ok {
		s = &flatSet{}
		h.byCard[card][target] = s
	}
	s.insert(idx)
}

// findMatchingClass returns the first (lowest-index) existing class whose
// cheap-filter count reaches the 52-2*handSize threshold and whose edges
// are fully compatible with edges, or notFound if none qualifies.
//
// The threshold exists because two equivalent hands of size handSize can
// each have up to handSize undefined transitions (cards already in the
// hand); between them at most 2*handSize cards can differ by absence
// alone, so any class below the threshold cannot possibly be a match and
// is skipped before the more expensive compatibility check.
func findMatchingClass(handSize uint8, edges *Edges, classes []equivalenceClass, counts map[classIndex]int) classIndex {
	if len(counts) == 0 {
		return notFound
	}
	ordered := make([]classIndex, 0, len(counts))
	for idx := range counts {
		ordered = append(ordered, idx)
	}
	// Candidates are checked in ascending index order so that, among
	// multiple matches, the one that was created first always wins —
	// the determinism rule the builder is required to uphold.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1] > ordered[j]; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	threshold := hand.DeckSize - 2*int(handSize)
	for _, idx := range ordered {
		if counts[idx] < threshold {
			continue
		}
		if edgesCompatible(&classes[idx].edges, edges) {
			return idx
		}
	}
	return notFound
}

// populateEdges merges edges into class's edges and records any newly
// defined (card, target) pairs in the hint index.
func populateEdges(edges *Edges, class *equivalenceClass, idx classIndex, hints *hintIndex) {
	for card := 0; card < hand.DeckSize; card++ {
		c := hand.Card(card)
		if hasCard(edges, c) {
			target := edges[c]
			class.edges[c] = target
			hints.add(c, target, idx)
		}
	}
}
