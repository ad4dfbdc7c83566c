package eip2333

import (
	"crypto/sha256"
	"fmt"

	"blskdf/internal/crypto"
	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
	"blskdf/internal/util/memzero"
)

const (
	// LamportBlocks is the number of 32-byte blocks in one Lamport secret key.
	LamportBlocks = 255
	lamportBlock  = sha256.Size
	lamportOKMLen = LamportBlocks * lamportBlock // 8160
)

// IKMToLamportSK expands ikm under salt into LamportBlocks ordered blocks.
func IKMToLamportSK(ikm, salt []byte) [][32]byte {
	prk := crypto.Extract(salt, ikm)
	okm, err := crypto.Expand(prk, nil, lamportOKMLen)
	memzero.Zero(prk)
	if err != nil {
		panic(fmt.Sprintf("eip2333: lamport expand: %v", err))
	}
	blocks := make([][32]byte, LamportBlocks)
	for i := range blocks {
		copy(blocks[i][:], okm[i*lamportBlock:])
	}
	memzero.Zero(okm)
	return blocks
}

// FlipBits returns the bitwise complement of b. It never modifies b.
func FlipBits(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = ^v
	}
	return out
}

// ParentSKToLamportPK compresses the Lamport public key of parent at index
// into a single SHA-256 digest.
func ParentSKToLamportPK(parent domain.SecretKey, index domain.Index) [32]byte {
	salt, err := crypto.I2OSPUint32(uint32(index), 4)
	if err != nil {
		panic(fmt.Sprintf("eip2333: encode index: %v", err))
	}
	ikm, err := crypto.I2OSP(parent.Int(), types.SecretKeySize)
	if err != nil {
		panic(fmt.Sprintf("eip2333: encode parent: %v", err))
	}
	notIKM := FlipBits(ikm)

	lamport0 := IKMToLamportSK(ikm, salt)
	lamport1 := IKMToLamportSK(notIKM, salt)
	memzero.Zero(ikm)
	memzero.Zero(notIKM)

	pk := make([]byte, 0, 2*LamportBlocks*sha256.Size)
	for _, blocks := range [][][32]byte{lamport0, lamport1} {
		for i := range blocks {
			h := sha256.Sum256(blocks[i][:])
			pk = append(pk, h[:]...)
		}
		memzero.ZeroBlocks(blocks)
	}
	return sha256.Sum256(pk)
}
