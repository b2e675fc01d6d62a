package numtheory

import (
	"fmt"
	"math"
	"math/bits"

	"tinyrsa/internal/domain"
)

// GCD returns the greatest common divisor of a and b.
//
// GCD(a, 0) is a; GCD(0, 0) is 0, which callers should not rely on.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x in [0, m) with a·x ≡ 1 (mod m).
//
// It fails with domain.ErrNoInverse when a and m share a factor.
func ModInverse(a, m uint64) (uint64, error) {
	if m < 2 {
		return 0, fmt.Errorf("%w: modulus %d is below 2", domain.ErrInvalidArgument, m)
	}
	if a > math.MaxInt64 || m > math.MaxInt64 {
		return 0, fmt.Errorf("%w: operands exceed signed range", domain.ErrInvalidArgument)
	}

	// Bézout coefficient t tracks a's multiplier and may go negative.
	r, newR := int64(m), int64(a%m)
	t, newT := int64(0), int64(1)
	for newR != 0 {
		q := r / newR
		r, newR = newR, r-q*newR
		t, newT = newT, t-q*newT
	}
	if r != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", domain.ErrNoInverse, a, m, r)
	}
	for t < 0 {
		t += int64(m)
	}
	return uint64(t), nil
}

// MulMod returns a·b mod m using a 128-bit intermediate product.
// m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
