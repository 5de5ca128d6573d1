package store

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// MapDigest returns a stable hex identifier for a map: a BLAKE2b-256
// hash over its dimensions and packed passability bits. Renaming a map
// file does not change its digest, so reruns land on the same map row.
func MapDigest(width, height int, cells []bool) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err) // only fails with an oversized key
	}

	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[0:8], uint64(width))
	binary.LittleEndian.PutUint64(dims[8:16], uint64(height))
	h.Write(dims[:])

	packed := make([]byte, (len(cells)+7)/8)
	for i, passable := range cells {
		if passable {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	h.Write(packed)

	return hex.EncodeToString(h.Sum(nil))
}
