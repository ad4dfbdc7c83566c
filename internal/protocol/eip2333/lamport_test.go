package eip2333_test

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
	"blskdf/internal/protocol/eip2333"
)

func TestFlipBits_RoundTrip(t *testing.T) {
	b := []byte("somethinghere")
	flipped := eip2333.FlipBits(b)

	for i := range b {
		if b[i]&flipped[i] != 0 {
			t.Fatalf("byte %d shares set bits: %08b & %08b", i, b[i], flipped[i])
		}
	}
	if !bytes.Equal(eip2333.FlipBits(flipped), b) {
		t.Fatal("flip_bits is not an involution")
	}
	if !bytes.Equal(b, []byte("somethinghere")) {
		t.Fatal("input was modified")
	}
	if got := eip2333.FlipBits(nil); len(got) != 0 {
		t.Fatalf("empty input: got %x", got)
	}
}

func TestIKMToLamportSK_Shape(t *testing.T) {
	salt := []byte{0, 0, 0, 1}
	blocks := eip2333.IKMToLamportSK([]byte("ikm"), salt)
	if len(blocks) != eip2333.LamportBlocks {
		t.Fatalf("got %d blocks, want %d", len(blocks), eip2333.LamportBlocks)
	}
	again := eip2333.IKMToLamportSK([]byte("ikm"), salt)
	for i := range blocks {
		if blocks[i] != again[i] {
			t.Fatalf("block %d not deterministic", i)
		}
	}
	if blocks[0] == blocks[1] {
		t.Fatal("adjacent blocks should differ")
	}
	other := eip2333.IKMToLamportSK([]byte("ikm"), []byte{0, 0, 0, 2})
	if other[0] == blocks[0] {
		t.Fatal("salt did not change the output")
	}
}

func TestParentSKToLamportPK_KnownAnswer(t *testing.T) {
	vs := loadVectors(t)
	pk := eip2333.ParentSKToLamportPK(vs[0].MasterSK, domain.Index(0))

	want := "672ba456d0257fe01910d3a799c068550e84881c8d441f8f5f833cbd6c1a9356"
	if got := hex.EncodeToString(pk[:]); got != want {
		t.Fatalf("compressed lamport pk: got %s, want %s", got, want)
	}
	if eip2333.HKDFModR(pk[:]) != vs[0].ChildSK {
		t.Fatal("hkdf_mod_r of compressed pk should equal the child key")
	}
}

// The largest scalar below r must encode into the fixed 32-byte IKM width.
func TestParentSKToLamportPK_MaxScalar(t *testing.T) {
	top := new(big.Int).Sub(types.CurveOrder(), big.NewInt(1))
	parent, err := types.SecretKeyFromInt(top)
	if err != nil {
		t.Fatalf("SecretKeyFromInt: %v", err)
	}
	a := eip2333.ParentSKToLamportPK(parent, 0)
	if a != eip2333.ParentSKToLamportPK(parent, 0) {
		t.Fatal("compressed lamport pk not deterministic")
	}
	if a == eip2333.ParentSKToLamportPK(domain.SecretKey{}, 0) {
		t.Fatal("distinct parents produced the same compressed pk")
	}
	if child := eip2333.DeriveChildSK(parent, 0); child.Int().Cmp(types.CurveOrder()) >= 0 {
		t.Fatalf("child %s not below r", child)
	}
}
