// Package lexicoid generates short, lexicographically sortable IDs from unix
// timestamps.
//
// An ID is the unpadded base32 encoding of the timestamp's minimal big-endian
// bytes, using an alphabet whose symbols are in increasing character order.
// Sorting IDs shortest-first, then byte-wise, reproduces numeric timestamp
// order. IDs are a display form only; there is no decoder.
package lexicoid

import (
	"encoding/base32"
	"encoding/binary"
	"sort"
	"strings"
	"time"
)

const alpha = "234567abcdefghijklmnopqrstuvwxyz"

var encoding = base32.NewEncoding(alpha).WithPadding(base32.NoPadding)

// ID is a lexicoid. Two IDs compare by length first, then byte-wise; use
// Compare or Less rather than <, which ignores the length rule.
type ID string

func (id ID) String() string {
	return string(id)
}

// Compare returns -1, 0, 1. Shorter IDs order before longer ones; equal
// lengths fall back to byte comparison, which matches timestamp order
// because the alphabet is monotonic.
func (id ID) Compare(other ID) int {
	if len(id) != len(other) {
		if len(id) < len(other) {
			return -1
		}
		return 1
	}
	return strings.Compare(string(id), string(other))
}

func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Valid reports whether every byte of id is an alphabet symbol. Encode only
// produces valid IDs; this is for checking IDs that arrive from elsewhere.
func (id ID) Valid() bool {
	if len(id) == 0 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alpha, id[i]) < 0 {
			return false
		}
	}
	return true
}

// Encode generates a lexicoid for a given unix timestamp.
func Encode(ts uint64) ID {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ts)

	// minimal big-endian form, one zero byte for ts == 0
	b := buf[:]
	for len(b) > 1 && b[0] == 0 {
		b = b[1:]
	}

	return ID(encoding.EncodeToString(b))
}

// Now generates a lexicoid for the current time.
func Now() ID {
	return Encode(uint64(time.Now().Unix()))
}

// Sort sorts ids in place under the ID ordering.
func Sort(ids []ID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Less(ids[j])
	})
}
