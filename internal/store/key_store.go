package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/util/memzero"
)

const (
	// PublicKeyFile holds (n, d).
	PublicKeyFile = "public.key"
	// PrivateKeyFile holds (n, e).
	PrivateKeyFile = "private.key"
)

// KeyFileStore persists key records as flat 16-byte files.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore that writes key pairs into dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir}
}

// SaveKeyPair writes pair.Public to public.key, then pair.Private to
// private.key. A failure on the first file stops before the second.
func (s *KeyFileStore) SaveKeyPair(pair domain.KeyPair) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	publicPath := filepath.Join(s.dir, PublicKeyFile)
	if err := writeKey(publicPath, pair.Public); err != nil {
		return "", "", fmt.Errorf("writing %s: %w", PublicKeyFile, err)
	}
	privatePath := filepath.Join(s.dir, PrivateKeyFile)
	if err := writeKey(privatePath, pair.Private); err != nil {
		return publicPath, "", fmt.Errorf("writing %s: %w", PrivateKeyFile, err)
	}
	return publicPath, privatePath, nil
}

// LoadKey reads a single key record from path. path is taken as given, not
// relative to the store directory.
func (s *KeyFileStore) LoadKey(path string) (domain.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return domain.Key{}, fmt.Errorf("reading key file: %w", err)
	}
	defer memzero.Zero(b)

	key, err := crypto.UnmarshalKey(b)
	if err != nil {
		return domain.Key{}, fmt.Errorf("reading key file %s: %w", path, err)
	}
	return key, nil
}

func writeKey(path string, key domain.Key) error {
	b := crypto.MarshalKey(key)
	defer memzero.Zero(b)
	return writeFile(path, b, 0o600)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
