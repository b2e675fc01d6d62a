// Package crypto exposes the byte-wise RSA transform used by tinyrsa.
//
// Contents
//
//   - Naive modular exponentiation over uint64 (ModPow)
//   - Per-byte encryption and decryption with a key record (Encrypt, Decrypt)
//   - Fixed-width binary codecs for key records and cipher buffers
//     (MarshalKey, UnmarshalKey, MarshalValues, UnmarshalValues)
//   - Short key-record fingerprints for display (Fingerprint)
//
// # Notes
//
// Each plaintext byte is transformed independently: there is no padding, no
// chaining and no constant-time guarantee. Byte-at-a-time RSA leaks symbol
// frequencies and must not be used to protect real data.
package crypto
