package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned by ParsePath for malformed textual paths.
var ErrInvalidPath = errors.New("invalid derivation path")

const (
	pathRoot = "m"

	// EIP-2334 purpose and coin type for Ethereum consensus-layer keys.
	PurposeEIP2334 Index = 12381
	CoinTypeETH    Index = 3600
)

// Path is an ordered list of indices from the master key to a leaf.
type Path []Index

// ParsePath parses the "m/a/b/c" notation. "m" alone is the empty path.
func ParsePath(s string) (Path, error) {
	segs := strings.Split(strings.TrimSpace(s), "/")
	if segs[0] != pathRoot {
		return nil, fmt.Errorf("%q: must start with %q: %w", s, pathRoot, ErrInvalidPath)
	}
	p := make(Path, 0, len(segs)-1)
	for _, seg := range segs[1:] {
		if seg == "" {
			return nil, fmt.Errorf("%q: empty segment: %w", s, ErrInvalidPath)
		}
		// Only ASCII digits; rejects signs, whitespace and hardened markers.
		for _, c := range seg {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%q: segment %q is not a decimal index: %w", s, seg, ErrInvalidPath)
			}
		}
		v, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: segment %q: %w", s, seg, ErrInvalidPath)
		}
		p = append(p, Index(v))
	}
	return p, nil
}

// String renders p in "m/a/b/c" notation.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(pathRoot)
	for _, i := range p {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}

// Child returns a new path extending p by i. p is not modified.
func (p Path) Child(i Index) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

// EIP2334WithdrawalPath returns m/12381/3600/i/0.
func EIP2334WithdrawalPath(i Index) Path {
	return Path{PurposeEIP2334, CoinTypeETH, i, 0}
}

// EIP2334SigningPath returns m/12381/3600/i/0/0.
func EIP2334SigningPath(i Index) Path {
	return EIP2334WithdrawalPath(i).Child(0)
}
