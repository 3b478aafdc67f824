//go:build gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// Compress appends the Zstandard frame for src to dst using libzstd.
func (c ZstdCodec) Compress(dst, src []byte, level int) ([]byte, error) {
	return gozstd.CompressLevel(dst, src, level), nil
}

// Decompress appends the decompressed content of the Zstandard frame src to
// dst using libzstd. The destination capacity is a hard bound: a frame that
// decodes to more bytes than cap(dst) is reported as an error (a nil dst
// decodes unbounded).
func (c ZstdCodec) Decompress(dst, src []byte) ([]byte, error) {
	decompressed, err := gozstd.Decompress(dst, src)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if cap(dst) > 0 && len(decompressed) > cap(dst) {
		return nil, fmt.Errorf("zstd: decompressed size %d exceeds buffer capacity %d", len(decompressed), cap(dst))
	}

	return decompressed, nil
}
