//go:build !amd64 && !arm64

package efa

func init() {
	initCapabilities()
}
