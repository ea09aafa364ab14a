// Package table is a reference implementation of the runtime evaluator
// contract this repo's builder exists to satisfy: load a flat file,
// chase card-indexed offsets, return the score. It performs no bounds
// checking: out-of-range cards or a wrong card count yield undefined
// results, by design.
package table

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Table is a loaded flat lookup table: a contiguous uint32 array indexed
// by current_slot + card.
type Table struct {
	values []uint32
}

// Open reads path into memory as a sequence of little-endian uint32
// values. It does not validate that the file came from this builder;
// a file of the wrong size, or for the wrong hand size, will simply
// produce nonsense scores when walked.
func Open(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("table: %s has %d bytes, not a multiple of 4", path, len(data))
	}
	values := make([]uint32, len(data)/4)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return &Table{values: values}, nil
}

// States returns the number of states in the table (len(values)/52).
func (t *Table) States() int {
	return len(t.values) / 52
}

// Eval walks the table following the flat-table contract:
//
//	x := 0
//	for _, c := range cards { x = table[x+c] }
//	return x
//
// There is no bounds checking: a bad card index or wrong card count is
// undefined behavior (an out-of-range read), exactly matching the
// contract the on-disk format promises.
func (t *Table) Eval(cards ...uint8) uint32 {
	var cursor uint32
	for _, c := range cards {
		cursor = t.values[cursor+uint32(c)]
	}
	return cursor
}
