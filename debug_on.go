//go:build nines_debug

package nines

const debug = true
