package store

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"blskdf/internal/domain"
	"blskdf/internal/domain/types"
)

// ErrMalformedVector is returned when a vector record cannot be parsed.
var ErrMalformedVector = errors.New("malformed test vector")

//go:embed testdata/eip2333_vectors.json
var embeddedVectors []byte

// EmbeddedVectors returns the published EIP-2333 test vectors.
func EmbeddedVectors() ([]domain.Vector, error) {
	var raw []domain.RawVector
	if err := json.Unmarshal(embeddedVectors, &raw); err != nil {
		return nil, fmt.Errorf("decode embedded vectors: %w", err)
	}
	return ParseVectors(raw)
}

// VectorFileStore reads vectors from a JSON file on disk.
type VectorFileStore struct {
	path string
}

// NewVectorFileStore returns a store reading from path.
func NewVectorFileStore(path string) *VectorFileStore { return &VectorFileStore{path: path} }

// LoadVectors reads and parses every record in the file. Unlike best-effort
// state files, a missing vector file is an error.
func (s *VectorFileStore) LoadVectors() ([]domain.Vector, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var raw []domain.RawVector
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return ParseVectors(raw)
}

// EmbeddedStore serves EmbeddedVectors through the VectorStore interface.
type EmbeddedStore struct{}

// LoadVectors returns EmbeddedVectors.
func (EmbeddedStore) LoadVectors() ([]domain.Vector, error) { return EmbeddedVectors() }

// ParseVectors converts raw records, reporting the first bad record by number.
func ParseVectors(raw []domain.RawVector) ([]domain.Vector, error) {
	out := make([]domain.Vector, 0, len(raw))
	for i, rv := range raw {
		v, err := parseVector(rv)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseVector(rv domain.RawVector) (domain.Vector, error) {
	var v domain.Vector

	seed, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(rv.Seed, "0x"), "0X"))
	if err != nil {
		return v, fmt.Errorf("%w: seed: %v", ErrMalformedVector, err)
	}
	master, err := types.ParseSecretKey(rv.MasterSK)
	if err != nil {
		return v, fmt.Errorf("%w: master_SK: %v", ErrMalformedVector, err)
	}
	index, err := strconv.ParseUint(rv.ChildIndex, 10, 32)
	if err != nil {
		return v, fmt.Errorf("%w: child_index: %v", ErrMalformedVector, err)
	}
	child, err := types.ParseSecretKey(rv.ChildSK)
	if err != nil {
		return v, fmt.Errorf("%w: child_SK: %v", ErrMalformedVector, err)
	}

	v.Seed = seed
	v.MasterSK = master
	v.ChildIndex = domain.Index(index)
	v.ChildSK = child
	return v, nil
}

// Compile-time assertions that both stores implement domain.VectorStore.
var (
	_ domain.VectorStore = (*VectorFileStore)(nil)
	_ domain.VectorStore = EmbeddedStore{}
)
