package domain

// RandomSource picks uniformly distributed indices. *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// KeyStore persists key records.
type KeyStore interface {
	// SaveKeyPair writes pair.Public and pair.Private to their fixed locations.
	SaveKeyPair(pair KeyPair) (publicPath, privatePath string, err error)
	// LoadKey reads a single key record from path.
	LoadKey(path string) (Key, error)
}

// BlobStore reads and writes plaintext and ciphertext files.
type BlobStore interface {
	ReadPlaintext(path string) ([]byte, error)
	WritePlaintext(path string, msg []byte) error
	ReadCiphertext(path string) ([]uint64, error)
	WriteCiphertext(path string, values []uint64) error
}

// KeyService generates and persists key pairs.
type KeyService interface {
	Generate() (KeyPair, error)
}

// CipherService encrypts and decrypts files with a stored key.
type CipherService interface {
	EncryptFile(inputPath, outputPath, keyPath string) error
	DecryptFile(inputPath, outputPath, keyPath string) error
}
