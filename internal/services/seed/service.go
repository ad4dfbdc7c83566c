package seed

import (
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"blskdf/internal/crypto"
	"blskdf/internal/domain"
)

var (
	// ErrMnemonicRequired is returned for a blank mnemonic.
	ErrMnemonicRequired = errors.New("mnemonic is required")
	// ErrInvalidMnemonic is returned when the word list or checksum is wrong.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// Service implements domain.SeedService over go-bip39.
type Service struct{}

// New returns a seed service.
func New() *Service { return &Service{} }

// SeedFromMnemonic returns the 64-byte BIP-39 seed for mnemonic and
// passphrase. Surrounding whitespace and repeated spaces are normalised.
func (s *Service) SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return nil, ErrMnemonicRequired
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// Fingerprint returns a short display fingerprint for seed.
func (s *Service) Fingerprint(seed []byte) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(seed))
}

// Compile-time assertion that Service implements domain.SeedService.
var _ domain.SeedService = (*Service)(nil)
