package compress

import (
	"fmt"

	"github.com/arloliu/sqlar/format"
)

// Codec is the contract every compression backend satisfies.
//
// A codec is self-identifying on the wire: every compressed output starts
// with the fixed magic prefix returned by Magic. Implementations must be
// stateless or internally synchronized, since a single codec instance is
// shared across goroutines.
type Codec interface {
	// Type identifies the codec's wire format.
	Type() format.CompressionType

	// Magic returns the fixed magic-byte prefix that identifies this codec's
	// compressed format. A nil result means the codec produces no signature
	// (the no-op codec).
	Magic() []byte

	// Bound returns the worst-case compressed size for an input of srcLen
	// bytes. A destination buffer with this capacity is always large enough
	// for Compress.
	Bound(srcLen int) int

	// DefaultLevel returns the level substituted for the "use default"
	// sentinel. It is never the store sentinel (0).
	DefaultLevel() int

	// MaxLevel returns the highest supported compression level. Requested
	// levels above it are clamped, not rejected.
	MaxLevel() int

	// Compress appends the compressed representation of src to dst and
	// returns the extended slice. dst may be nil; passing a buffer with
	// Bound(len(src)) capacity avoids reallocation.
	//
	// Memory management:
	//   - Returned slice is owned by the caller
	//   - Input slice is not modified
	//   - Internal encoder state may be pooled for reuse
	Compress(dst, src []byte, level int) ([]byte, error)

	// Decompress appends the decompressed bytes of src to dst and returns
	// the extended slice. The destination capacity is a hard bound: codecs
	// must report an error rather than grow dst beyond cap(dst).
	Decompress(dst, src []byte) ([]byte, error)
}

// CreateCodec is a factory function that creates a new Codec for the
// specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zlib, Zstd, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZlib:
		return NewZlibCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %s", compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZlib: NewZlibCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a shared built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
