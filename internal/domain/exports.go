package domain

import (
	interfaces "blskdf/internal/domain/interfaces"
	types "blskdf/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint  = types.Fingerprint
	Index        = types.Index
	Path         = types.Path
	SecretKey    = types.SecretKey
	RawVector    = types.RawVector
	Vector       = types.Vector
	VectorResult = types.VectorResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyDerivationService = interfaces.KeyDerivationService
	SeedService          = interfaces.SeedService
	VectorStore          = interfaces.VectorStore
)
