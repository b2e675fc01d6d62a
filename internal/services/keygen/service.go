package keygen

import (
	"errors"
	"fmt"
	"math/bits"

	"tinyrsa/internal/domain"
	"tinyrsa/internal/logger"
	"tinyrsa/internal/numtheory"
)

// Config tunes key generation.
type Config struct {
	// SieveLimit is the largest candidate prime.
	SieveLimit uint64
	// MinModulus rejects draws whose modulus is smaller; 256 lets every
	// byte value round-trip. Zero disables the check.
	MinModulus uint64
	// MaxDraws bounds how many (p, q) draws are attempted.
	MaxDraws int
}

// Service generates key pairs and persists them through a store.
type Service struct {
	store domain.KeyStore
	rnd   domain.RandomSource
	cfg   Config
	log   *logger.Logger
}

// New returns a key generation service.
func New(store domain.KeyStore, rnd domain.RandomSource, cfg Config, log *logger.Logger) *Service {
	return &Service{store: store, rnd: rnd, cfg: cfg, log: log}
}

// Generate derives a key pair and saves it. The saved public record is
// (n, d) and the private record is (n, e); see domain.KeyPair.
func (s *Service) Generate() (domain.KeyPair, error) {
	pair, err := s.Derive()
	if err != nil {
		return domain.KeyPair{}, err
	}

	publicPath, privatePath, err := s.store.SaveKeyPair(pair)
	if err != nil {
		return domain.KeyPair{}, err
	}
	s.log.Info().
		Str("public", publicPath).
		Str("private", privatePath).
		Uint64("n", pair.Private.Modulus).
		Msg("key pair written")
	return pair, nil
}

// Derive computes a key pair without persisting it.
func (s *Service) Derive() (domain.KeyPair, error) {
	if s.cfg.MaxDraws < 1 {
		return domain.KeyPair{}, fmt.Errorf("%w: max draws %d", domain.ErrInvalidArgument, s.cfg.MaxDraws)
	}
	primes, err := numtheory.Sieve(s.cfg.SieveLimit)
	if err != nil {
		return domain.KeyPair{}, err
	}

	var lastErr error
	for draw := 1; draw <= s.cfg.MaxDraws; draw++ {
		p := primes[s.rnd.IntN(len(primes))]
		q := primes[s.rnd.IntN(len(primes))]

		pair, err := derivePair(primes, p, q)
		switch {
		case err == nil && pair.Private.Modulus >= s.cfg.MinModulus:
			s.log.Debug().Int("draw", draw).Uint64("p", p).Uint64("q", q).Msg("primes accepted")
			if p == q {
				s.log.Warn().Uint64("n", pair.Private.Modulus).
					Msg("equal primes drawn; some byte values will not decrypt to themselves")
			}
			return pair, nil
		case err == nil:
			lastErr = fmt.Errorf("%w: modulus %d below minimum %d",
				domain.ErrInvalidArgument, pair.Private.Modulus, s.cfg.MinModulus)
		case errors.Is(err, domain.ErrExponentNotFound):
			lastErr = err
		default:
			return domain.KeyPair{}, err
		}
		s.log.Debug().Int("draw", draw).Uint64("p", p).Uint64("q", q).Err(lastErr).Msg("primes rejected")
	}
	return domain.KeyPair{}, fmt.Errorf("no usable primes after %d draws: %w", s.cfg.MaxDraws, lastErr)
}

// derivePair computes n, fin, e and d for the primes p and q.
func derivePair(primes []uint64, p, q uint64) (domain.KeyPair, error) {
	hi, n := bits.Mul64(p, q)
	if hi != 0 {
		return domain.KeyPair{}, fmt.Errorf("%w: modulus %d*%d overflows", domain.ErrInvalidArgument, p, q)
	}
	fin := (p - 1) * (q - 1)

	e, err := numtheory.ChooseExponent(primes, fin)
	if err != nil {
		return domain.KeyPair{}, err
	}
	d, err := numtheory.ModInverse(e, fin)
	if err != nil {
		return domain.KeyPair{}, err
	}

	return domain.KeyPair{
		Public:  domain.Key{Modulus: n, Exponent: d},
		Private: domain.Key{Modulus: n, Exponent: e},
		P:       p,
		Q:       q,
		Totient: fin,
	}, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
