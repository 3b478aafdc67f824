package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/sqlar/format"
)

// ZlibCodec provides zlib (RFC 1950) compression for archive payloads.
//
// This is the historical archive format: a two-byte identification header
// followed by a deflate stream and a four-byte Adler-32 checksum. It remains
// supported so archives written by zlib-based tooling stay readable, and for
// environments where the zlib format is mandated.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

func (c ZlibCodec) Type() format.CompressionType {
	return format.CompressionZlib
}

func (c ZlibCodec) Magic() []byte {
	return format.MagicZlib
}

// Bound returns the worst-case compressed size for srcLen input bytes,
// following the deflate stored-block expansion formula used by compressBound.
func (c ZlibCodec) Bound(srcLen int) int {
	return srcLen + (srcLen >> 12) + (srcLen >> 14) + (srcLen >> 25) + 13
}

// DefaultLevel returns the zlib "use default" level sentinel (-1), which the
// underlying deflate implementation resolves to its own default, matching
// how Z_DEFAULT_COMPRESSION behaves.
func (c ZlibCodec) DefaultLevel() int {
	return zlib.DefaultCompression
}

func (c ZlibCodec) MaxLevel() int {
	return zlib.BestCompression
}

// Compress appends the zlib stream for src to dst.
func (c ZlibCodec) Compress(dst, src []byte, level int) ([]byte, error) {
	buf := bytes.NewBuffer(dst)

	w, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress appends the decompressed content of the zlib stream src to dst,
// bounded by cap(dst).
func (c ZlibCodec) Decompress(dst, src []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer r.Close()

	return readBounded(dst, r, "zlib")
}
