// Package numtheory holds the integer arithmetic behind key generation.
//
// Contents
//
//   - Sieve of Eratosthenes up to a bounded limit (Sieve)
//   - Greatest common divisor and modular inverse via the extended
//     Euclidean algorithm (GCD, ModInverse)
//   - Overflow-free modular multiplication (MulMod)
//   - Public exponent selection from a prime table (ChooseExponent)
//
// # Notes
//
// Everything works on fixed-width uint64 values. Nothing here is
// constant-time and nothing here keeps state between calls.
package numtheory
