// Package commands defines the tinyrsa CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a key pair into public.key and private.key
//   - encrypt      Encrypt a file byte by byte with a key file
//   - decrypt      Decrypt a file produced by encrypt
//   - fingerprint  Print the fingerprint of a key file
//
// # Implementation
//
// The root command resolves the configuration and builds the dependency graph
// (stores, random source, services) before any subcommand runs. Errors are
// logged once by Execute and turned into a non-zero exit status by main.
//
// The key files keep a historical naming: public.key holds (n, d) and
// private.key holds (n, e). Encrypt with one and decrypt with the other.
package commands
