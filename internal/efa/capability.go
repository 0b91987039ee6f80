package efa

import (
	"os"
	"strings"
)

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// hasFMA is true if the CPU executes fused multiply-add in hardware
	// (set by platform-specific init).
	hasFMA bool

	// useFMA selects the product-tail strategy: fused multiply-add when
	// true, Dekker's product on Split halves otherwise. Both strategies
	// produce bit-identical tails; only speed differs.
	useFMA bool

	// hasOverride is true if ROBUST_FMA was set to a recognized value.
	hasOverride bool
)

// initCapabilities is called from platform-specific init functions after CPU
// features are detected.
func initCapabilities() {
	useFMA = hasFMA

	// Check for environment override. Forcing FMA on without hardware
	// support is allowed: math.FMA falls back to an exact software
	// implementation, so results are unchanged, only slower.
	if override := os.Getenv("ROBUST_FMA"); override != "" {
		if on, ok := ParseFMAMode(override); ok {
			useFMA = on
			hasOverride = true
		}
	}
}

// ParseFMAMode parses a ROBUST_FMA value.
func ParseFMAMode(s string) (on, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true":
		return true, true
	case "off", "0", "false":
		return false, true
	default:
		return false, false
	}
}

// UseFMA reports whether product tails are currently computed with a fused
// multiply-add.
func UseFMA() bool {
	return useFMA
}

// HasFMA reports whether the CPU provides hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}

// IsOverridden reports whether ROBUST_FMA selected the strategy.
func IsOverridden() bool {
	return hasOverride
}
