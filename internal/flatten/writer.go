package flatten

import (
	"encoding/binary"
	"os"
)

// Write serializes table as contiguous little-endian uint32 values, with
// no header and no magic — the file's entire content is the array, so its
// size in bytes is exactly 4*len(table) == 208*states.
func Write(path string, table Table) error {
	buf := make([]byte, len(table)*4)
	for i, v := range table {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return os.WriteFile(path, buf, 0o644)
}
