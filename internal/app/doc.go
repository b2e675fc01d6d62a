// Package app wires application dependencies for the CLI.
//
// It resolves Config against its defaults, then builds the concrete stores,
// the random source and the high-level services, exposing them via the Wire
// struct for commands to use.
package app
