// Package flatten assigns contiguous slot indices to an ordered FSM and
// materializes the result as the uint32 array the runtime evaluator walks.
package flatten

import (
	"fmt"

	"pokerphe/internal/fsm"
	"pokerphe/internal/hand"
)

// Table is the flattened form of an FSM: a uint32 array of length
// 52*len(order). State at ordering position p occupies
// table[52*p : 52*p+52).
type Table []uint32

// Flatten assigns slot(h_i) = 52*i for each state h_i in order, then fills
// each state's row: terminal-layer rows (size+1 == maxHandSize) store the
// raw Score directly, all other rows store the successor's starting slot.
func Flatten(machine fsm.FSM, order []hand.Encoded, maxHandSize uint8) (Table, error) {
	if len(order) != len(machine) {
		return nil, fmt.Errorf("flatten: ordering has %d entries, FSM has %d states", len(order), len(machine))
	}
	if len(order) == 0 || order[0] != hand.Empty {
		return nil, fmt.Errorf("flatten: ordering must start with the empty hand (0)")
	}

	slotOf := make(map[hand.Encoded]uint32, len(order))
	for i, state := range order {
		slotOf[state] = uint32(i) * hand.DeckSize
	}

	table := make(Table, len(order)*hand.DeckSize)
	for _, state := range order {
		edges := machine[state]
		base := slotOf[state]
		terminal := hand.Decode(state).Size+1 == maxHandSize

		for card := 0; card < hand.DeckSize; card++ {
			value := edges[card]
			if terminal {
				table[base+uint32(card)] = uint32(value)
				continue
			}
			if value == 0 {
				// Undefined transition (the card is already in the
				// hand); never traversed by a legal walk. Zero is the
				// conventional filler.
				continue
			}
			slot, ok := slotOf[hand.Encoded(value)]
			if !ok {
				return nil, fmt.Errorf("flatten: state %v has an edge to %d, which is not in the ordering", hand.Decode(state), value)
			}
			table[base+uint32(card)] = slot
		}
	}

	return table, nil
}
