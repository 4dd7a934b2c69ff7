package bolt

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

func idKey(id uuid.UUID) []byte {
	return id[:]
}

// timeKey orders records chronologically: 8 bytes of big-endian unix nanos then the id.
func timeKey(t time.Time, id uuid.UUID) []byte {
	k := make([]byte, 8, 8+len(id))
	binary.BigEndian.PutUint64(k, uint64(t.UnixNano()))

	return append(k, id[:]...)
}

func timePrefix(t time.Time) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(t.UnixNano()))

	return k
}

// before reports whether a timeKey sorts strictly before the prefix.
func before(key, prefix []byte) bool {
	return bytes.Compare(key[:len(prefix)], prefix) < 0
}

func encodeCount(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)

	return b
}

func decodeCount(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}

	return binary.BigEndian.Uint64(b)
}
