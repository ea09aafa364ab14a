package fsm

import (
	"fmt"

	"pokerphe/internal/hand"
	"pokerphe/internal/oracle"
)

// Build constructs the automaton for hands up to maxSize (1..7), bottom-up
// from size maxSize-1 down to 0, calling eval only on complete maxSize-card
// hands. It returns the finished FSM together with the representative map
// accumulated along the way (mostly useful for tests and debugging; normal
// callers only need the FSM).
func Build(eval oracle.Fn, maxSize uint8) (FSM, RepresentativeMap, error) {
	if maxSize < 1 || maxSize > hand.MaxSize {
		return nil, nil, fmt.Errorf("fsm: max hand size must be in [1, %d], got %d", hand.MaxSize, maxSize)
	}

	machine := FSM{}
	repMap := RepresentativeMap{}

	for size := int(maxSize) - 1; size >= 0; size-- {
		if err := buildHandsOfSize(uint8(size), maxSize, eval, repMap, machine); err != nil {
			return nil, nil, err
		}
	}

	return machine, repMap, nil
}

// buildHandsOfSize fuses every hand of the given size into equivalence
// classes, then folds each class into one FSM state keyed by its
// representative. It requires that hands of size+1 have already been
// collapsed into repMap (or, if size+1 == maxSize, that eval can score
// them directly) — the contract Build's top-down size ordering upholds.
func buildHandsOfSize(size, maxSize uint8, eval oracle.Fn, repMap RepresentativeMap, machine FSM) error {
	var classes []equivalenceClass
	hints := newHintIndex()

	var buildErr error
	hand.ForEach(size, func(h hand.Hand) {
		if buildErr != nil {
			return
		}

		var edges Edges
		counts := map[classIndex]int{}

		hand.ForEachNext(h, func(card hand.Card, next hand.Hand) {
			var target HandOrScore
			if next.Size == maxSize {
				target = HandOrScore(eval(next))
			} else {
				rep, ok := repMap[next.Encode()]
				if !ok {
					buildErr = fmt.Errorf("fsm: missing representative for %v (size %d); sizes must be built largest-first", next, next.Size)
					return
				}
				target = HandOrScore(rep)
			}
			edges[card] = target

			for _, idx := range hints.candidates(card, target) {
				counts[idx]++
			}
		})
		if buildErr != nil {
			return
		}

		idx := findMatchingClass(size, &edges, classes, counts)
		if idx == notFound {
			classes = append(classes, equivalenceClass{})
			idx = classIndex(len(classes) - 1)
		}

		class := &classes[idx]
		class.hands = append(class.hands, h.Encode())
		populateEdges(&edges, class, idx, hints)
	})
	if buildErr != nil {
		return buildErr
	}

	for _, class := range classes {
		representative := class.hands[0]
		for _, h := range class.hands {
			repMap[h] = representative
		}
		machine[representative] = class.edges
	}

	return nil
}
