// Package store loads EIP-2333 known-answer test vectors.
//
// The published vectors are embedded in the binary (EmbeddedVectors); a
// VectorFileStore reads additional vector files in the same JSON layout:
//
//	[{"seed": "0x..", "master_SK": "..", "child_index": "..", "child_SK": ".."}]
//
// Seeds are hex with an optional 0x prefix; keys and indices are decimal.
// Derived keys are never written anywhere by this package.
package store
