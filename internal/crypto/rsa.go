package crypto

import (
	"fmt"

	"tinyrsa/internal/domain"
	"tinyrsa/internal/numtheory"
)

// ModPow returns base^exp mod m by repeated multiply-and-reduce.
//
// It starts at base mod m and multiplies by base exp-1 times, so the cost is
// linear in exp. exp must be at least 1 and m at least 2.
func ModPow(base, exp, m uint64) uint64 {
	b := base % m
	r := b
	for i := uint64(1); i < exp; i++ {
		r = numtheory.MulMod(r, b, m)
	}
	return r
}

// Encrypt transforms every byte of msg with key, one value per byte.
func Encrypt(msg []byte, key domain.Key) ([]uint64, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	out := make([]uint64, len(msg))
	for i, b := range msg {
		m := uint64(b)
		if m >= key.Modulus {
			return nil, fmt.Errorf("%w: byte %d at offset %d, modulus %d",
				domain.ErrMessageOutOfRange, b, i, key.Modulus)
		}
		out[i] = ModPow(m, key.Exponent, key.Modulus)
	}
	return out, nil
}

// Decrypt transforms every value with key and truncates each result to a byte.
func Decrypt(values []uint64, key domain.Key) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	out := make([]byte, len(values))
	for i, c := range values {
		out[i] = byte(ModPow(c, key.Exponent, key.Modulus))
	}
	return out, nil
}

func validateKey(key domain.Key) error {
	if key.Modulus < 2 {
		return fmt.Errorf("%w: modulus %d", domain.ErrInvalidKey, key.Modulus)
	}
	if key.Exponent == 0 {
		return fmt.Errorf("%w: zero exponent", domain.ErrInvalidKey)
	}
	return nil
}
