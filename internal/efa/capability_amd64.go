//go:build amd64

package efa

import "golang.org/x/sys/cpu"

func init() {
	hasFMA = cpu.X86.HasFMA
	initCapabilities()
}
