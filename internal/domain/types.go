package domain

// IntWidth is the on-disk width in bytes of every stored integer.
const IntWidth = 8

// Key is a single key record: a modulus and one exponent.
//
// On disk it is exactly two native-endian uint64 values, modulus first.
type Key struct {
	Modulus  uint64
	Exponent uint64
}

// KeyPair is the result of key generation.
//
// The file naming is inverted relative to textbook RSA and is kept that way
// for on-disk compatibility: Public holds (n, d), the decryption exponent,
// and Private holds (n, e). Neither name is a statement about secrecy.
type KeyPair struct {
	Public  Key
	Private Key

	P       uint64
	Q       uint64
	Totient uint64
}

// Fingerprint is a short identifier for key records presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
