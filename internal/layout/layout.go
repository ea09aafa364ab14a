// Package layout produces state orderings used to flatten an FSM into a
// contiguous array. Three policies are provided — BFS, DFS, and Van Emde
// Boas — each yielding every FSM key exactly once, starting with the
// empty-hand state.
package layout

import (
	"pokerphe/internal/fsm"
	"pokerphe/internal/hand"
)

// Policy is a first-class, injectable ordering strategy, parameterized by
// the max hand size the FSM was built for (needed to bound traversal depth
// explicitly rather than relying on FSM map membership alone — a terminal
// Score can, in principle, collide numerically with a real encoded hand,
// so depth is tracked alongside each visited node instead of inferred from
// it).
type Policy func(machine fsm.FSM, maxHandSize uint8) []hand.Encoded

// successors returns the 52 transition targets out of state, in card
// order.
func successors(machine fsm.FSM, state hand.Encoded) [hand.DeckSize]fsm.HandOrScore {
	return machine[state]
}

// BFS lays out states in breadth-first-search order from the empty hand.
func BFS(machine fsm.FSM, maxHandSize uint8) []hand.Encoded {
	type queued struct {
		state hand.Encoded
		depth uint8
	}

	seen := map[hand.Encoded]bool{hand.Empty: true}
	order := []hand.Encoded{}
	queue := []queued{{hand.Empty, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		order = append(order, cur.state)

		if cur.depth+1 == maxHandSize {
			// Children live at the terminal layer: they're Scores, not
			// FSM states, and must never be treated as visitable nodes.
			continue
		}
		edges := successors(machine, cur.state)
		for _, child := range edges {
			c := hand.Encoded(child)
			if seen[c] {
				continue
			}
			seen[c] = true
			queue = append(queue, queued{c, cur.depth + 1})
		}
	}

	return order
}

// DFS lays out states in depth-first-search order from the empty hand,
// never descending past depth maxHandSize.
func DFS(machine fsm.FSM, maxHandSize uint8) []hand.Encoded {
	type framed struct {
		state hand.Encoded
		depth uint8
	}

	seen := map[hand.Encoded]bool{}
	order := []hand.Encoded{}
	stack := []framed{{hand.Empty, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[cur.state] {
			continue
		}
		seen[cur.state] = true
		order = append(order, cur.state)

		if cur.depth+1 == maxHandSize {
			continue
		}
		edges := successors(machine, cur.state)
		// Push in reverse so the lowest card is explored first, matching
		// first-visit order for a stack-based traversal.
		for card := hand.DeckSize - 1; card >= 0; card-- {
			child := hand.Encoded(edges[card])
			if !seen[child] {
				stack = append(stack, framed{child, cur.depth + 1})
			}
		}
	}

	return order
}

// VanEmdeBoas lays out states in a cache-oblivious recursive split by
// depth: any subtree small enough to fit a cache line ends up contiguous,
// for any cache line size.
func VanEmdeBoas(machine fsm.FSM, maxHandSize uint8) []hand.Encoded {
	seen := map[hand.Encoded]bool{}
	order, _ := vebHelper(machine, hand.Empty, int(maxHandSize), seen)
	return order
}

func vebHelper(machine fsm.FSM, root hand.Encoded, depthBudget int, seen map[hand.Encoded]bool) (order, next []hand.Encoded) {
	if seen[root] {
		return nil, nil
	}

	if depthBudget == 1 {
		seen[root] = true
		edges := successors(machine, root)
		next = make([]hand.Encoded, hand.DeckSize)
		for card, target := range edges {
			next[card] = hand.Encoded(target)
		}
		return []hand.Encoded{root}, next
	}

	dTop := depthBudget / 2
	dBot := depthBudget - dTop

	order, roots := vebHelper(machine, root, dTop, seen)
	for _, lowerRoot := range roots {
		lowerOrder, lowerNext := vebHelper(machine, lowerRoot, dBot, seen)
		order = append(order, lowerOrder...)
		next = append(next, lowerNext...)
	}
	return order, next
}
