package keygen_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/logger"
	"tinyrsa/internal/services/keygen"
	"tinyrsa/internal/store"
)

// Indices into the primes up to 255.
const (
	idx2  = 0
	idx3  = 1
	idx5  = 2
	idx7  = 3
	idx53 = 15
	idx61 = 17
)

// scriptedRand replays a fixed sequence of indices.
type scriptedRand struct {
	t   *testing.T
	seq []int
}

func (r *scriptedRand) IntN(n int) int {
	r.t.Helper()
	require.NotEmpty(r.t, r.seq, "random source exhausted")
	v := r.seq[0]
	r.seq = r.seq[1:]
	require.Less(r.t, v, n)
	return v
}

// memStore keeps the last saved pair in memory.
type memStore struct {
	saved *domain.KeyPair
	err   error
}

func (m *memStore) SaveKeyPair(pair domain.KeyPair) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	m.saved = &pair
	return "public.key", "private.key", nil
}

func (m *memStore) LoadKey(string) (domain.Key, error) { return domain.Key{}, errors.New("unused") }

func defaultConfig() keygen.Config {
	return keygen.Config{SieveLimit: 255, MinModulus: 256, MaxDraws: 64}
}

func TestGenerate_DeterministicPrimes(t *testing.T) {
	st := &memStore{}
	rnd := &scriptedRand{t: t, seq: []int{idx61, idx53}}
	svc := keygen.New(st, rnd, defaultConfig(), logger.Nop())

	pair, err := svc.Generate()
	require.NoError(t, err)

	assert.Equal(t, uint64(61), pair.P)
	assert.Equal(t, uint64(53), pair.Q)
	assert.Equal(t, uint64(3120), pair.Totient)
	assert.Equal(t, domain.Key{Modulus: 3233, Exponent: 251}, pair.Private)
	assert.Equal(t, domain.Key{Modulus: 3233, Exponent: 2051}, pair.Public)

	require.NotNil(t, st.saved)
	assert.Equal(t, pair, *st.saved)
}

func TestGenerate_EqualPrimesAllowed(t *testing.T) {
	var logs bytes.Buffer
	rnd := &scriptedRand{t: t, seq: []int{idx61, idx61}}
	svc := keygen.New(&memStore{}, rnd, defaultConfig(), logger.NewJSONLogger("test", &logs, false))

	pair, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, uint64(3721), pair.Private.Modulus)
	assert.Equal(t, uint64(3600), pair.Totient)
	assert.Equal(t, uint64(1), pair.Private.Exponent*pair.Public.Exponent%pair.Totient)

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "equal primes drawn")
}

func TestGenerate_DistinctPrimesNoWarning(t *testing.T) {
	var logs bytes.Buffer
	rnd := &scriptedRand{t: t, seq: []int{idx61, idx53}}
	svc := keygen.New(&memStore{}, rnd, defaultConfig(), logger.NewJSONLogger("test", &logs, false))

	_, err := svc.Generate()
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), `"level":"warn"`)
}

func TestGenerate_RedrawsUnusablePrimes(t *testing.T) {
	rnd := &scriptedRand{t: t, seq: []int{
		idx2, idx2, // fin = 1, no exponent
		idx2, idx3, // fin = 2, no exponent
		idx7, idx5, // n = 35, below the minimum modulus
		idx61, idx53,
	}}
	svc := keygen.New(&memStore{}, rnd, defaultConfig(), logger.Nop())

	pair, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, uint64(3233), pair.Private.Modulus)
	assert.Empty(t, rnd.seq)
}

func TestGenerate_MinModulusDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.MinModulus = 0
	rnd := &scriptedRand{t: t, seq: []int{idx7, idx5}}
	svc := keygen.New(&memStore{}, rnd, cfg, logger.Nop())

	pair, err := svc.Generate()
	require.NoError(t, err)
	assert.Equal(t, domain.Key{Modulus: 35, Exponent: 23}, pair.Private)
	assert.Equal(t, domain.Key{Modulus: 35, Exponent: 23}, pair.Public)
}

func TestGenerate_DrawsExhausted(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxDraws = 3
	rnd := &scriptedRand{t: t, seq: []int{idx2, idx2, idx2, idx2, idx2, idx2}}
	st := &memStore{}
	svc := keygen.New(st, rnd, cfg, logger.Nop())

	_, err := svc.Generate()
	assert.ErrorIs(t, err, domain.ErrExponentNotFound)
	assert.Nil(t, st.saved)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.SieveLimit = 1
	_, err := keygen.New(&memStore{}, &scriptedRand{t: t}, cfg, logger.Nop()).Generate()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	cfg = defaultConfig()
	cfg.MaxDraws = 0
	_, err = keygen.New(&memStore{}, &scriptedRand{t: t}, cfg, logger.Nop()).Generate()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestGenerate_StoreFailure(t *testing.T) {
	st := &memStore{err: domain.ErrIO}
	rnd := &scriptedRand{t: t, seq: []int{idx61, idx53}}

	_, err := keygen.New(st, rnd, defaultConfig(), logger.Nop()).Generate()
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestGenerate_WritesKeyFiles(t *testing.T) {
	home := t.TempDir()
	keys := store.NewKeyFileStore(home)
	rnd := &scriptedRand{t: t, seq: []int{idx61, idx53}}

	_, err := keygen.New(keys, rnd, defaultConfig(), logger.Nop()).Generate()
	require.NoError(t, err)

	pub, err := keys.LoadKey(filepath.Join(home, store.PublicKeyFile))
	require.NoError(t, err)
	assert.Equal(t, domain.Key{Modulus: 3233, Exponent: 2051}, pub)

	priv, err := keys.LoadKey(filepath.Join(home, store.PrivateKeyFile))
	require.NoError(t, err)
	assert.Equal(t, domain.Key{Modulus: 3233, Exponent: 251}, priv)
}

func TestDerive_RandomPairsRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	svc := keygen.New(&memStore{}, rnd, defaultConfig(), logger.Nop())

	msg := make([]byte, 0, 16)
	for b := 0; b < 256; b += 17 {
		msg = append(msg, byte(b))
	}

	for i := 0; i < 5; i++ {
		pair, err := svc.Derive()
		require.NoError(t, err)

		e, fin := pair.Private.Exponent, pair.Totient
		require.Greater(t, e, uint64(1))
		require.Less(t, e, fin)
		require.Equal(t, uint64(1), e*pair.Public.Exponent%fin)
		require.Equal(t, pair.P*pair.Q, pair.Private.Modulus)
		if pair.P == pair.Q {
			// n = p² is not square-free; textbook RSA does not invert there.
			continue
		}

		values, err := crypto.Encrypt(msg, pair.Private)
		require.NoError(t, err)
		got, err := crypto.Decrypt(values, pair.Public)
		require.NoError(t, err)
		require.Equal(t, msg, got)
	}
}
