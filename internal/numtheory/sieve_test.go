package numtheory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinyrsa/internal/domain"
	"tinyrsa/internal/numtheory"
)

func TestSieve_UpTo30(t *testing.T) {
	primes, err := numtheory.Sieve(30)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}

func TestSieve_SmallLimits(t *testing.T) {
	primes, err := numtheory.Sieve(2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, primes)

	primes, err = numtheory.Sieve(3)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, primes)

	primes, err = numtheory.Sieve(4)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, primes)
}

func TestSieve_MatchesTrialDivision(t *testing.T) {
	const limit = 2000
	primes, err := numtheory.Sieve(limit)
	require.NoError(t, err)

	var want []uint64
	for n := uint64(2); n <= limit; n++ {
		if isPrime(n) {
			want = append(want, n)
		}
	}
	assert.Equal(t, want, primes)
	assert.Equal(t, uint64(1999), primes[len(primes)-1])
}

func TestSieve_Default255(t *testing.T) {
	primes, err := numtheory.Sieve(255)
	require.NoError(t, err)
	assert.Len(t, primes, 54)
	assert.Equal(t, uint64(251), primes[len(primes)-1])
}

func TestSieve_RejectsBadLimits(t *testing.T) {
	for _, limit := range []uint64{0, 1, numtheory.MaxSieveLimit + 1} {
		_, err := numtheory.Sieve(limit)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "limit %d", limit)
	}
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
