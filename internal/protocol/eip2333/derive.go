package eip2333

import (
	"fmt"
	"math/big"

	"blskdf/internal/crypto"
	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
	"blskdf/internal/util/memzero"
)

const (
	keygenSalt = "BLS-SIG-KEYGEN-SALT-"

	// okmLength is ceil((1.5 * ceil(log2(r))) / 8) for BLS12-381.
	okmLength = 48
)

// r is read-only after package init.
var r = types.CurveOrder()

// HKDFModR reduces arbitrary key material to a scalar in [0, r).
func HKDFModR(ikm []byte) domain.SecretKey {
	prk := crypto.Extract([]byte(keygenSalt), ikm)
	okm, err := crypto.Expand(prk, nil, okmLength)
	memzero.Zero(prk)
	if err != nil {
		panic(fmt.Sprintf("eip2333: hkdf_mod_r expand: %v", err))
	}
	x := new(big.Int).Mod(crypto.OS2IP(okm), r)
	memzero.Zero(okm)

	sk, err := types.SecretKeyFromInt(x)
	if err != nil {
		panic(fmt.Sprintf("eip2333: reduced key: %v", err))
	}
	return sk
}

// DeriveMasterSK derives the master key for seed. The seed length is not
// checked here; see the keygen service for policy enforcement.
func DeriveMasterSK(seed []byte) domain.SecretKey {
	return HKDFModR(seed)
}

// DeriveChildSK derives the child of parent at index.
func DeriveChildSK(parent domain.SecretKey, index domain.Index) domain.SecretKey {
	compressed := ParentSKToLamportPK(parent, index)
	sk := HKDFModR(compressed[:])
	memzero.Zero(compressed[:])
	return sk
}

// DerivePath derives the key at path below the master key of seed.
func DerivePath(seed []byte, path domain.Path) domain.SecretKey {
	return DeriveFrom(DeriveMasterSK(seed), path)
}

// DeriveFrom folds child derivation over path starting at sk.
func DeriveFrom(sk domain.SecretKey, path domain.Path) domain.SecretKey {
	for _, index := range path {
		sk = DeriveChildSK(sk, index)
	}
	return sk
}
