package interfaces

import domaintypes "blskdf/internal/domain/types"

// VectorStore loads known-answer test vectors.
type VectorStore interface {
	LoadVectors() ([]domaintypes.Vector, error)
}
