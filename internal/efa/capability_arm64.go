//go:build arm64

package efa

// FMADD/FMLA are part of the base arm64 floating-point instruction set.
func init() {
	hasFMA = true
	initCapabilities()
}
