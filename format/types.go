package format

import "bytes"

// CompressionType identifies the wire format of a stored payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents raw (uncompressed) storage.
	CompressionZlib CompressionType = 0x2 // CompressionZlib represents the zlib (RFC 1950) format.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents the Zstandard frame format.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents the LZ4 frame format.
)

// Magic-byte signatures for the supported compressed formats.
//
// Each compressed payload is self-identifying: the leading bytes of the
// stored blob carry the codec's standard magic prefix. A payload that does
// not start with a known signature is raw.
//
//	zlib magic bytes: 78 5e (fast) | 78 9c (default) | 78 7d (best)
//	zstd magic bytes: 28 b5 2f fd (same for all compression levels)
//	lz4 frame magic bytes: 04 22 4d 18
//
// Only the first byte of the zlib header is part of the signature; the second
// byte varies with the compression level.
var (
	MagicZlib = []byte{0x78}
	MagicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	MagicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect inspects the leading bytes of data and reports which compressed
// format it carries. It returns CompressionNone when data is too short to
// hold any known signature or when no signature matches.
func Detect(data []byte) CompressionType {
	switch {
	case len(data) > len(MagicZstd) && bytes.HasPrefix(data, MagicZstd):
		return CompressionZstd
	case len(data) > len(MagicLZ4) && bytes.HasPrefix(data, MagicLZ4):
		return CompressionLZ4
	case len(data) > len(MagicZlib) && bytes.HasPrefix(data, MagicZlib):
		return CompressionZlib
	default:
		return CompressionNone
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
