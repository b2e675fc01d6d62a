package numtheory

import (
	"fmt"

	"tinyrsa/internal/domain"
)

// MaxSieveLimit bounds the table a single sieve may allocate.
const MaxSieveLimit = 1 << 28

// Sieve returns every prime in [2, limit] in increasing order.
func Sieve(limit uint64) ([]uint64, error) {
	if limit < 2 {
		return nil, fmt.Errorf("%w: sieve limit %d is below 2", domain.ErrInvalidArgument, limit)
	}
	if limit > MaxSieveLimit {
		return nil, fmt.Errorf("%w: sieve limit %d exceeds %d", domain.ErrInvalidArgument, limit, MaxSieveLimit)
	}

	// composite[i] reports whether i+2 has been struck.
	composite := make([]bool, limit-1)
	count := limit - 1
	for n := uint64(2); n <= limit; n++ {
		if composite[n-2] {
			continue
		}
		for k := n * 2; k <= limit; k += n {
			if !composite[k-2] {
				composite[k-2] = true
				count--
			}
		}
	}

	primes := make([]uint64, 0, count)
	for i, c := range composite {
		if !c {
			primes = append(primes, uint64(i)+2)
		}
	}
	return primes, nil
}
