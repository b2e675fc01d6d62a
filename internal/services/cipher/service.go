package cipher

import (
	"fmt"

	"tinyrsa/internal/crypto"
	"tinyrsa/internal/domain"
	"tinyrsa/internal/logger"
	"tinyrsa/internal/util/memzero"
)

// Service encrypts and decrypts files.
type Service struct {
	keys  domain.KeyStore
	blobs domain.BlobStore
	log   *logger.Logger
}

// New returns a cipher service backed by the given stores.
func New(keys domain.KeyStore, blobs domain.BlobStore, log *logger.Logger) *Service {
	return &Service{keys: keys, blobs: blobs, log: log}
}

// EncryptFile encrypts inputPath with the key at keyPath and writes one
// fixed-width value per plaintext byte to outputPath.
func (s *Service) EncryptFile(inputPath, outputPath, keyPath string) error {
	msg, err := s.blobs.ReadPlaintext(inputPath)
	if err != nil {
		return err
	}
	defer memzero.Zero(msg)

	key, err := s.keys.LoadKey(keyPath)
	if err != nil {
		return err
	}

	values, err := crypto.Encrypt(msg, key)
	if err != nil {
		return fmt.Errorf("encrypting %s: %w", inputPath, err)
	}
	if err := s.blobs.WriteCiphertext(outputPath, values); err != nil {
		return err
	}

	s.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("bytes", len(msg)).
		Msg("file encrypted")
	return nil
}

// DecryptFile decrypts the cipher buffer at inputPath with the key at keyPath
// and writes the recovered bytes to outputPath.
func (s *Service) DecryptFile(inputPath, outputPath, keyPath string) error {
	values, err := s.blobs.ReadCiphertext(inputPath)
	if err != nil {
		return err
	}

	key, err := s.keys.LoadKey(keyPath)
	if err != nil {
		return err
	}

	msg, err := crypto.Decrypt(values, key)
	if err != nil {
		return fmt.Errorf("decrypting %s: %w", inputPath, err)
	}
	defer memzero.Zero(msg)

	if err := s.blobs.WritePlaintext(outputPath, msg); err != nil {
		return err
	}

	s.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("bytes", len(msg)).
		Msg("file decrypted")
	return nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
