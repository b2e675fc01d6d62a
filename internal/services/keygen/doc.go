// Package keygen derives and persists tinyrsa key pairs.
//
// It sieves a prime table, draws two primes through an injected random
// source, selects the exponents and hands the pair to a domain.KeyStore.
package keygen
