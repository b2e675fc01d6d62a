package store

import (
	"fmt"
	"sync"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
)

// BlobFileStore reads and writes plaintext and ciphertext files at
// caller-supplied paths.
type BlobFileStore struct {
	mu sync.Mutex
}

// NewBlobFileStore returns a BlobFileStore.
func NewBlobFileStore() *BlobFileStore {
	return &BlobFileStore{}
}

// ReadPlaintext returns the raw bytes of path.
func (s *BlobFileStore) ReadPlaintext(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return b, nil
}

// WritePlaintext writes msg to path.
func (s *BlobFileStore) WritePlaintext(path string, msg []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(path, msg, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// ReadCiphertext decodes the cipher buffer stored at path. A file whose
// length is not a multiple of domain.IntWidth fails with
// domain.ErrMalformedInput before its contents are read.
func (s *BlobFileStore) ReadCiphertext(path string) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	size, err := fileSize(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	if size%domain.IntWidth != 0 {
		return nil, fmt.Errorf("reading input file %s: %w: size %d is not a multiple of %d",
			path, domain.ErrMalformedInput, size, domain.IntWidth)
	}

	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	values, err := crypto.UnmarshalValues(b)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}
	return values, nil
}

// WriteCiphertext encodes values and writes them to path.
func (s *BlobFileStore) WriteCiphertext(path string, values []uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(path, crypto.MarshalValues(values), 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Compile-time assertion that BlobFileStore implements domain.BlobStore.
var _ domain.BlobStore = (*BlobFileStore)(nil)
