package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroBlocks zeroes every block of a Lamport-style block list in place.
func ZeroBlocks(blocks [][32]byte) {
	for i := range blocks {
		Zero(blocks[i][:])
	}
}
