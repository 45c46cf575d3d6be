//go:build !nines_debug

package nines

// debug enables assertions on invariants that already hold by construction.
// Build with the nines_debug tag to turn them on.
const debug = false
