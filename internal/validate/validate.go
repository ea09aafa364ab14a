// Package validate cross-checks the FSM and the flattened table against
// the oracle they were built from, exhaustively over every legal hand of
// the target size.
package validate

import (
	"fmt"

	"pokerphe/internal/fsm"
	"pokerphe/internal/hand"
	"pokerphe/internal/oracle"
	"pokerphe/internal/table"
)

// Mismatch describes one hand where a validator's computed score disagreed
// with the oracle.
type Mismatch struct {
	Hand     hand.Hand
	Expected uint32
	Actual   uint32
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("mismatch for %v: expected=%d actual=%d", m.Hand, m.Expected, m.Actual)
}

// FSM walks machine for every legal hand of size and compares the result
// to eval(hand). It stops at the first mismatch, as spec'd: an FSM
// mismatch indicates a builder bug and aborts the run rather than
// continuing.
func FSM(machine fsm.FSM, eval oracle.Fn, size uint8) error {
	var mismatch error
	hand.ForEach(size, func(h hand.Hand) {
		if mismatch != nil {
			return
		}
		expected := eval(h)

		var cursor fsm.HandOrScore
		for i := uint8(0); i < h.Size; i++ {
			edges := machine[hand.Encoded(cursor)]
			cursor = edges[h.Cards[i]]
		}

		if uint32(cursor) != expected {
			mismatch = Mismatch{Hand: h, Expected: expected, Actual: uint32(cursor)}
		}
	})
	return mismatch
}

// FlatTable walks tbl for every legal hand of size and compares the result
// to eval(hand). A walk that leaves the table (which tbl.Eval does not
// check) is reported as an error too, instead of panicking. Unlike FSM, the
// caller is expected to continue to the next layout after a failure (and
// remove the offending file) rather than abort the whole run — that policy
// lives in internal/pipeline, not here.
func FlatTable(tbl *table.Table, eval oracle.Fn, size uint8) error {
	var mismatch error
	hand.ForEach(size, func(h hand.Hand) {
		if mismatch != nil {
			return
		}
		expected := eval(h)
		var actual uint32
		func() {
			defer func() {
				if r := recover(); r != nil {
					mismatch = fmt.Errorf("walk for %v left the table: %v", h, r)
				}
			}()
			actual = tbl.Eval(h.Slice()...)
		}()
		if mismatch != nil {
			return
		}
		if actual != expected {
			mismatch = Mismatch{Hand: h, Expected: expected, Actual: actual}
		}
	})
	return mismatch
}
