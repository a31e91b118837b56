//go:build tristate_strict

package tristate

// Strict reports whether contract checks are compiled in.
const Strict = true
