package compress

import "github.com/arloliu/sqlar/format"

// Zstandard compression level constants, matching the reference libzstd
// definitions. Levels requested above MaxZstdLevel are clamped down by the
// caller; DefaultZstdLevel is substituted for the "use default" sentinel.
const (
	DefaultZstdLevel = 3
	MaxZstdLevel     = 22
)

// ZstdCodec provides Zstandard compression for archive payloads.
//
// Zstd is the preferred archive format: it compresses better than zlib at
// every level, decompresses fast regardless of the level used, and supports
// high levels (19, 22) for cold archival content.
//
// Two backends satisfy this codec, selected at build time (the gozstd build
// tag picks the cgo libzstd bindings; the default build uses the pure-Go
// implementation). Both produce standard Zstandard frames, so archives are
// interchangeable between builds.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
//
// Returns:
//   - ZstdCodec: New Zstd codec instance
//
// Example:
//
//	codec := NewZstdCodec()
//	compressed, err := codec.Compress(nil, data, DefaultZstdLevel)
//	if err != nil {
//		return err
//	}
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

func (c ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}

func (c ZstdCodec) Magic() []byte {
	return format.MagicZstd
}

// Bound returns the worst-case compressed size for srcLen input bytes,
// computed with the ZSTD_COMPRESSBOUND formula so it holds for both backends.
func (c ZstdCodec) Bound(srcLen int) int {
	margin := 0
	if srcLen < 128<<10 {
		margin = ((128 << 10) - srcLen) >> 11
	}

	return srcLen + (srcLen >> 8) + margin
}

func (c ZstdCodec) DefaultLevel() int {
	return DefaultZstdLevel
}

func (c ZstdCodec) MaxLevel() int {
	return MaxZstdLevel
}
