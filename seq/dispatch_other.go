//go:build !amd64 && !arm64

package seq

func init() {
	// Non-amd64/arm64 architectures (wasm, riscv64, ...) use scalar mode.
	setScalarMode()
}
