// Package memzero wipes buffers that held key material or plaintext.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best-effort: copies made elsewhere,
// including by the garbage collector, are not reached.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
