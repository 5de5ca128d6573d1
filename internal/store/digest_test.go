package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapDigestStable(t *testing.T) {
	cells := []bool{true, false, true, true, false, true}

	first := MapDigest(3, 2, cells)
	second := MapDigest(3, 2, cells)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "hex-encoded 256-bit digest")
}

func TestMapDigestSensitive(t *testing.T) {
	cells := []bool{true, false, true, true, false, true}
	base := MapDigest(3, 2, cells)

	flipped := append([]bool(nil), cells...)
	flipped[4] = true
	assert.NotEqual(t, base, MapDigest(3, 2, flipped), "cell change must change digest")

	// Same bits, different shape.
	assert.NotEqual(t, base, MapDigest(2, 3, cells), "dimensions must be part of the digest")
}

func TestMapDigestPastByteBoundary(t *testing.T) {
	cells := make([]bool, 9)
	base := MapDigest(9, 1, cells)

	cells[8] = true
	assert.NotEqual(t, base, MapDigest(9, 1, cells))
}
