package interfaces

import (
	"context"

	domaintypes "blskdf/internal/domain/types"
)

// KeyDerivationService derives EIP-2333 secret keys under a seed policy.
type KeyDerivationService interface {
	MasterKey(seed []byte) (domaintypes.SecretKey, error)
	ChildKey(parent domaintypes.SecretKey, index domaintypes.Index) domaintypes.SecretKey
	PathKey(seed []byte, path domaintypes.Path) (domaintypes.SecretKey, error)
	DeriveRange(
		ctx context.Context,
		seed []byte,
		prefix domaintypes.Path,
		from domaintypes.Index,
		count uint32,
	) ([]domaintypes.SecretKey, error)
	Verify(vectors []domaintypes.Vector) []domaintypes.VectorResult
}

// SeedService turns externally held secrets into derivation seeds.
type SeedService interface {
	SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error)
	Fingerprint(seed []byte) domaintypes.Fingerprint
}
