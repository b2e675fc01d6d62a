package app

import (
	"fmt"

	"dario.cat/mergo"

	"tinyrsa/internal/domain"
)

const (
	// DefaultSieveLimit is the largest candidate prime for key generation.
	DefaultSieveLimit = 255
	// DefaultMinModulus keeps every byte value below the modulus.
	DefaultMinModulus = 256
	// DefaultMaxDraws bounds how many prime pairs keygen tries.
	DefaultMaxDraws = 64
	// MaxKeygenSieveLimit caps the candidate primes. Decryption costs one
	// multiplication per unit of d, and d grows with (p-1)(q-1), so larger
	// primes make decryption impractically slow.
	MaxKeygenSieveLimit = 1 << 12
)

// Config holds runtime wiring options for building the app.
// Zero fields take their value from DefaultConfig.
type Config struct {
	Home              string // directory receiving public.key and private.key
	SieveLimit        uint64 // largest candidate prime
	MaxDraws          int    // prime pair draws before keygen gives up
	AllowSmallModulus bool   // accept moduli below 256
	Verbose           bool   // debug logging
	LogJSON           bool   // JSON log entries instead of console lines
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Home:       ".",
		SieveLimit: DefaultSieveLimit,
		MaxDraws:   DefaultMaxDraws,
	}
}

// Resolve fills zero fields of cfg from DefaultConfig and validates the result.
func Resolve(cfg Config) (Config, error) {
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return Config{}, fmt.Errorf("merging config defaults: %w", err)
	}
	return cfg, cfg.validate()
}

// MinModulus is the smallest modulus keygen accepts under cfg.
func (c Config) MinModulus() uint64 {
	if c.AllowSmallModulus {
		return 0
	}
	return DefaultMinModulus
}

func (c Config) validate() error {
	if c.SieveLimit < 2 || c.SieveLimit > MaxKeygenSieveLimit {
		return fmt.Errorf("%w: sieve limit must be in [2, %d], got %d",
			domain.ErrInvalidArgument, MaxKeygenSieveLimit, c.SieveLimit)
	}
	if c.MaxDraws < 1 {
		return fmt.Errorf("%w: max draws must be positive, got %d", domain.ErrInvalidArgument, c.MaxDraws)
	}
	return nil
}
