package app

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"

	"tinyrsa/internal/domain"
	"tinyrsa/internal/logger"
	ciphersvc "tinyrsa/internal/services/cipher"
	keygensvc "tinyrsa/internal/services/keygen"
	"tinyrsa/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Config Config
	Keys   domain.KeyStore
	Blobs  domain.BlobStore
	Keygen domain.KeyService
	Cipher domain.CipherService
}

// NewWire constructs the dependency graph from cfg. rnd may be nil, in which
// case a ChaCha8 source seeded once from crypto/rand is used.
func NewWire(cfg Config, rnd domain.RandomSource, log *logger.Logger) (*Wire, error) {
	cfg, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if rnd == nil {
		rnd, err = newRandom()
		if err != nil {
			return nil, err
		}
	}

	// File-based stores
	keyStore := store.NewKeyFileStore(cfg.Home)
	blobStore := store.NewBlobFileStore()

	// High-level services
	keygenSvc := keygensvc.New(keyStore, rnd, keygensvc.Config{
		SieveLimit: cfg.SieveLimit,
		MinModulus: cfg.MinModulus(),
		MaxDraws:   cfg.MaxDraws,
	}, log.GetChildLogger("keygen"))
	cipherSvc := ciphersvc.New(keyStore, blobStore, log.GetChildLogger("cipher"))

	return &Wire{
		Config: cfg,
		Keys:   keyStore,
		Blobs:  blobStore,
		Keygen: keygenSvc,
		Cipher: cipherSvc,
	}, nil
}

func newRandom() (*rand.Rand, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("seeding random source: %w", err)
	}
	return rand.New(rand.NewChaCha8(seed)), nil
}
