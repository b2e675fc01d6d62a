// Package store provides file-based persistence for tinyrsa's key records and
// cipher buffers.
//
// It contains concrete implementations of the domain storage interfaces,
// writing the flat binary layouts produced by internal/crypto. All methods
// are concurrency-safe via internal locking, and every write goes through a
// temp file plus rename so a failed write never leaves a truncated target.
//
// The package includes stores for:
//   - Key pairs and single key records (KeyFileStore)
//   - Plaintext and ciphertext files (BlobFileStore)
package store
