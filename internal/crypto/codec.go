package crypto

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrEncoding is returned when an integer cannot be encoded in the requested
// number of bytes.
var ErrEncoding = errors.New("integer does not fit requested length")

// I2OSP encodes x as a big-endian byte string of exactly length bytes.
//
// It fails with ErrEncoding if x is negative or x >= 256^length.
func I2OSP(x *big.Int, length int) ([]byte, error) {
	if x.Sign() < 0 || length < 0 {
		return nil, fmt.Errorf("i2osp(%s, %d): %w", x, length, ErrEncoding)
	}
	if (x.BitLen()+7)/8 > length {
		return nil, fmt.Errorf("i2osp(%s, %d): %w", x, length, ErrEncoding)
	}
	out := make([]byte, length)
	x.FillBytes(out)
	return out, nil
}

// I2OSPUint32 is I2OSP for small unsigned values such as derivation indices.
func I2OSPUint32(x uint32, length int) ([]byte, error) {
	return I2OSP(new(big.Int).SetUint64(uint64(x)), length)
}

// OS2IP decodes b as a big-endian non-negative integer.
func OS2IP(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
