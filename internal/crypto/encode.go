package crypto

import (
	"encoding/binary"
	"fmt"

	"tinyrsa/internal/domain"
)

// KeySize is the encoded length of a key record.
const KeySize = 2 * domain.IntWidth

// MarshalKey encodes key as modulus then exponent, native byte order.
func MarshalKey(key domain.Key) []byte {
	b := make([]byte, 0, KeySize)
	b = binary.NativeEndian.AppendUint64(b, key.Modulus)
	return binary.NativeEndian.AppendUint64(b, key.Exponent)
}

// UnmarshalKey decodes a record written by MarshalKey.
func UnmarshalKey(b []byte) (domain.Key, error) {
	if len(b) != KeySize {
		return domain.Key{}, fmt.Errorf("%w: key record is %d bytes, want %d",
			domain.ErrMalformedInput, len(b), KeySize)
	}
	return domain.Key{
		Modulus:  binary.NativeEndian.Uint64(b[:domain.IntWidth]),
		Exponent: binary.NativeEndian.Uint64(b[domain.IntWidth:]),
	}, nil
}

// MarshalValues encodes a cipher buffer back to back, native byte order.
func MarshalValues(values []uint64) []byte {
	b := make([]byte, 0, len(values)*domain.IntWidth)
	for _, v := range values {
		b = binary.NativeEndian.AppendUint64(b, v)
	}
	return b
}

// UnmarshalValues decodes a cipher buffer. len(b) must be a multiple of
// domain.IntWidth.
func UnmarshalValues(b []byte) ([]uint64, error) {
	if len(b)%domain.IntWidth != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			domain.ErrMalformedInput, len(b), domain.IntWidth)
	}
	values := make([]uint64, len(b)/domain.IntWidth)
	for i := range values {
		values[i] = binary.NativeEndian.Uint64(b[i*domain.IntWidth:])
	}
	return values, nil
}
