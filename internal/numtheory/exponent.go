package numtheory

import (
	"fmt"

	"tinyrsa/internal/domain"
)

const (
	// MaxExponentRetries is how many times ChooseExponent re-sieves a larger
	// table before giving up.
	MaxExponentRetries = 4

	// resieveFactor scales the table size into the next sieve limit.
	resieveFactor = 1000
)

// ChooseExponent picks e with 1 < e < fin and gcd(e, fin) = 1.
//
// The table is scanned from its largest entry down, so the largest eligible
// prime wins. When the table has no candidate it is replaced by a sieve up to
// 1000 × len(primes), at most MaxExponentRetries times.
func ChooseExponent(primes []uint64, fin uint64) (uint64, error) {
	if fin < 3 {
		return 0, fmt.Errorf("%w: totient %d admits no exponent", domain.ErrExponentNotFound, fin)
	}

	table := primes
	for attempt := 0; ; attempt++ {
		for i := len(table) - 1; i >= 0; i-- {
			if p := table[i]; p > 1 && p < fin && GCD(p, fin) == 1 {
				return p, nil
			}
		}
		if attempt == MaxExponentRetries {
			break
		}

		limit := resieveFactor * uint64(max(len(table), 1))
		if limit > MaxSieveLimit {
			break
		}
		next, err := Sieve(limit)
		if err != nil {
			return 0, err
		}
		table = next
	}
	return 0, fmt.Errorf("%w: totient %d after %d retries", domain.ErrExponentNotFound, fin, MaxExponentRetries)
}
