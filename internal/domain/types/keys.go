package types

import (
	"errors"
	"fmt"
	"math/big"
)

// curveOrderDecimal is r, the order of the BLS12-381 G1/G2 subgroups.
const curveOrderDecimal = "52435875175126190479447740508185965837690552500527637822603658699938581184513"

// SecretKeySize is the encoded width of a SecretKey in bytes.
const SecretKeySize = 32

// ErrKeyOutOfRange is returned when a scalar is not in [0, r).
var ErrKeyOutOfRange = errors.New("secret key out of range [0, r)")

var curveOrder = func() *big.Int {
	r, ok := new(big.Int).SetString(curveOrderDecimal, 10)
	if !ok {
		panic("types: malformed curve order constant")
	}
	return r
}()

// CurveOrder returns a copy of the BLS12-381 subgroup order r.
func CurveOrder() *big.Int { return new(big.Int).Set(curveOrder) }

// SecretKey is a BLS secret scalar in [0, r), stored big-endian.
//
// The zero value is the scalar 0. SecretKey is comparable with ==.
type SecretKey [SecretKeySize]byte

// SecretKeyFromInt range-checks x and returns it as a SecretKey.
func SecretKeyFromInt(x *big.Int) (SecretKey, error) {
	var sk SecretKey
	if x == nil || x.Sign() < 0 || x.Cmp(curveOrder) >= 0 {
		return sk, fmt.Errorf("%v: %w", x, ErrKeyOutOfRange)
	}
	x.FillBytes(sk[:])
	return sk, nil
}

// ParseSecretKey parses a base-10 scalar such as those in EIP-2333 vectors.
func ParseSecretKey(s string) (SecretKey, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return SecretKey{}, fmt.Errorf("parse secret key %q: not a decimal integer", s)
	}
	return SecretKeyFromInt(x)
}

// Int returns the key as a freshly allocated integer.
func (k SecretKey) Int() *big.Int { return new(big.Int).SetBytes(k[:]) }

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// String returns the decimal form of the key.
func (k SecretKey) String() string { return k.Int().String() }
