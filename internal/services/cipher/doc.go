// Package cipher encrypts and decrypts files with a stored key record.
//
// It loads the key through a domain.KeyStore, moves file contents through a
// domain.BlobStore and applies the byte-wise transform from internal/crypto.
package cipher
