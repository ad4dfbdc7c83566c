package keygen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"blskdf/internal/domain"
	"blskdf/internal/protocol/eip2333"
)

const (
	// DefaultMinSeedLength is the EIP-2333 recommended minimum of 256 bits.
	DefaultMinSeedLength = 32

	// DefaultWorkers bounds concurrent child derivations in DeriveRange.
	DefaultWorkers = 4
)

var (
	// ErrEmptySeed is returned for a zero-length seed.
	ErrEmptySeed = errors.New("seed is empty")

	// ErrSeedTooShort is returned for a seed below the policy minimum.
	ErrSeedTooShort = errors.New("seed is shorter than the minimum length")

	// ErrIndexOverflow is returned when a range runs past the last index.
	ErrIndexOverflow = errors.New("index range overflows uint32")
)

// Policy holds caller-chosen limits that the derivation itself does not
// impose.
type Policy struct {
	// MinSeedLength is the minimum seed length in bytes. Zero disables the
	// length check, but empty seeds are still rejected.
	MinSeedLength int

	// Workers bounds DeriveRange concurrency. Values < 1 use DefaultWorkers.
	Workers int
}

// DefaultPolicy returns the recommended policy.
func DefaultPolicy() Policy {
	return Policy{MinSeedLength: DefaultMinSeedLength, Workers: DefaultWorkers}
}

// Service derives master, child and path keys.
type Service struct {
	policy Policy
	log    *logrus.Entry
}

// New returns a key derivation service. A nil log discards output.
func New(policy Policy, log *logrus.Entry) *Service {
	if policy.Workers < 1 {
		policy.Workers = DefaultWorkers
	}
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = logrus.NewEntry(l)
	}
	return &Service{policy: policy, log: log}
}

// MasterKey checks seed against the policy and derives its master key.
func (s *Service) MasterKey(seed []byte) (domain.SecretKey, error) {
	if err := s.checkSeed(seed); err != nil {
		return domain.SecretKey{}, err
	}
	sk := eip2333.DeriveMasterSK(seed)
	s.log.WithField("seed_len", len(seed)).Debug("Derived master key")
	return sk, nil
}

// ChildKey derives the child of parent at index. It cannot fail.
func (s *Service) ChildKey(parent domain.SecretKey, index domain.Index) domain.SecretKey {
	return eip2333.DeriveChildSK(parent, index)
}

// PathKey derives the key at path below the master key of seed.
func (s *Service) PathKey(seed []byte, path domain.Path) (domain.SecretKey, error) {
	master, err := s.MasterKey(seed)
	if err != nil {
		return domain.SecretKey{}, err
	}
	sk := eip2333.DeriveFrom(master, path)
	s.log.WithField("path", path.String()).Debug("Derived path key")
	return sk, nil
}

// DeriveRange derives prefix/from through prefix/(from+count-1). The prefix
// key is derived once; children are fanned out over the policy's workers and
// returned in index order. Cancelling ctx stops scheduling new indices.
func (s *Service) DeriveRange(
	ctx context.Context,
	seed []byte,
	prefix domain.Path,
	from domain.Index,
	count uint32,
) ([]domain.SecretKey, error) {
	if count > 0 && uint64(from)+uint64(count)-1 > math.MaxUint32 {
		return nil, fmt.Errorf("from %d count %d: %w", from, count, ErrIndexOverflow)
	}
	parent, err := s.PathKey(seed, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SecretKey, count)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.policy.Workers)

	for i := uint32(0); i < count; i++ {
		if egCtx.Err() != nil {
			break
		}
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			// Each goroutine writes a distinct slot.
			out[i] = eip2333.DeriveChildSK(parent, from+domain.Index(i))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"prefix": prefix.String(),
		"from":   from,
		"count":  count,
	}).Debug("Derived key range")
	return out, nil
}

// Verify checks each vector's master and child derivation.
func (s *Service) Verify(vectors []domain.Vector) []domain.VectorResult {
	results := make([]domain.VectorResult, 0, len(vectors))
	for i, v := range vectors {
		res := domain.VectorResult{
			Vector:      v,
			GotMasterSK: eip2333.DeriveMasterSK(v.Seed),
			GotChildSK:  eip2333.DeriveChildSK(v.MasterSK, v.ChildIndex),
		}
		res.MasterPassed = res.GotMasterSK == v.MasterSK
		res.ChildPassed = res.GotChildSK == v.ChildSK

		entry := s.log.WithFields(logrus.Fields{
			"vector": i,
			"index":  v.ChildIndex,
		})
		if res.Passed() {
			entry.Debug("Vector passed")
		} else {
			entry.WithFields(logrus.Fields{
				"master_ok": res.MasterPassed,
				"child_ok":  res.ChildPassed,
			}).Error("Vector failed")
		}
		results = append(results, res)
	}
	return results
}

func (s *Service) checkSeed(seed []byte) error {
	if len(seed) == 0 {
		return ErrEmptySeed
	}
	if len(seed) < s.policy.MinSeedLength {
		return fmt.Errorf("seed has %d bytes, need %d: %w", len(seed), s.policy.MinSeedLength, ErrSeedTooShort)
	}
	return nil
}

// Compile-time assertion that Service implements domain.KeyDerivationService.
var _ domain.KeyDerivationService = (*Service)(nil)
