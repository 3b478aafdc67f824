//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPools pools one encoder per effective speed level.
// The klauspost/compress/zstd library is explicitly designed for reuse:
// encoders and decoders operate without allocations after a warmup, so
// storing them is required for best performance. Requested integer levels
// collapse onto the library's four speed levels via EncoderLevelFromZstd.
var zstdEncoderPools = func() map[zstd.EncoderLevel]*sync.Pool {
	levels := []zstd.EncoderLevel{
		zstd.SpeedFastest,
		zstd.SpeedDefault,
		zstd.SpeedBetterCompression,
		zstd.SpeedBestCompression,
	}

	pools := make(map[zstd.EncoderLevel]*sync.Pool, len(levels))
	for _, level := range levels {
		pools[level] = &sync.Pool{
			New: func() any {
				encoder, err := zstd.NewWriter(nil,
					zstd.WithEncoderLevel(level),
					zstd.WithEncoderConcurrency(1), // Single-threaded for deterministic output
					zstd.WithEncoderCRC(false),     // Disable CRC for performance
				)
				if err != nil {
					// This should never happen with valid options
					panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
				}
				return encoder
			},
		}
	}

	return pools
}()

// zstdDecoderPool pools zstd decoders for reuse to eliminate allocation overhead.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),  // Use more memory for better performance
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// Compress appends the Zstandard frame for src to dst.
// Uses a pooled encoder for the mapped speed level (eliminates allocation overhead).
func (c ZstdCodec) Compress(dst, src []byte, level int) ([]byte, error) {
	pool := zstdEncoderPools[zstd.EncoderLevelFromZstd(level)]

	// Get encoder from pool (reuses "warmed up" encoder)
	encoder := pool.Get().(*zstd.Encoder)
	defer pool.Put(encoder)

	// EncodeAll is stateless - safe to use with pooled encoder
	return encoder.EncodeAll(src, dst), nil
}

// Decompress appends the decompressed content of the Zstandard frame src to
// dst. The destination capacity is a hard bound: a frame that decodes to more
// bytes than cap(dst) is reported as an error, never silently grown past the
// bound (a nil dst decodes unbounded).
func (c ZstdCodec) Decompress(dst, src []byte) ([]byte, error) {
	// Get decoder from pool (reuses "warmed up" decoder)
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	// DecodeAll is stateless - safe to use with pooled decoder
	// Even if this call fails, the decoder can be reused for next call
	decompressed, err := decoder.DecodeAll(src, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if cap(dst) > 0 && len(decompressed) > cap(dst) {
		return nil, fmt.Errorf("zstd: decompressed size %d exceeds buffer capacity %d", len(decompressed), cap(dst))
	}

	return decompressed, nil
}
