package compress

import "github.com/arloliu/sqlar/format"

// NoOpCodec is a codec that bypasses data without compression.
//
// This codec is useful for:
//   - Testing and benchmarking scenarios where you want to measure overhead without compression
//   - Development environments where compression is disabled for debugging
//   - Archives holding data that is already compressed or encrypted
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-operation codec that bypasses data.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

func (c NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

// Magic returns nil: raw payloads carry no signature.
func (c NoOpCodec) Magic() []byte {
	return nil
}

func (c NoOpCodec) Bound(srcLen int) int {
	return srcLen
}

func (c NoOpCodec) DefaultLevel() int {
	return 1
}

func (c NoOpCodec) MaxLevel() int {
	return 1
}

// Compress bypasses compression and returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCodec) Compress(_, src []byte, _ int) ([]byte, error) {
	return src, nil
}

// Decompress bypasses decompression and returns the input data directly without copying.
func (c NoOpCodec) Decompress(_, src []byte) ([]byte, error) {
	return src, nil
}
