package compress

import (
	"bytes"
	"fmt"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/sqlar/format"
)

// lz4Levels maps integer levels 1..9 onto the lz4 HC compression levels.
// Levels at or below zero select the fast (non-HC) path.
var lz4Levels = []lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4Codec provides LZ4 frame compression for archive payloads.
//
// The frame format carries the standard 04 22 4d 18 magic prefix, so LZ4
// payloads are self-identifying like the other archive formats. LZ4 trades
// compression ratio for very fast decompression, which suits archives that
// are read far more often than written.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 frame codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

func (c LZ4Codec) Magic() []byte {
	return format.MagicLZ4
}

// Bound returns the worst-case compressed size for srcLen input bytes: the
// block bound plus frame header and footer overhead.
func (c LZ4Codec) Bound(srcLen int) int {
	return lz4.CompressBlockBound(srcLen) + 32
}

func (c LZ4Codec) DefaultLevel() int {
	return 1
}

func (c LZ4Codec) MaxLevel() int {
	return len(lz4Levels)
}

// Compress appends the LZ4 frame for src to dst.
func (c LZ4Codec) Compress(dst, src []byte, level int) ([]byte, error) {
	buf := bytes.NewBuffer(dst)

	w := lz4.NewWriter(buf)
	if err := w.Apply(lz4.CompressionLevelOption(lz4Level(level))); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress appends the decompressed content of the LZ4 frame src to dst,
// bounded by cap(dst).
func (c LZ4Codec) Decompress(dst, src []byte) ([]byte, error) {
	return readBounded(dst, lz4.NewReader(bytes.NewReader(src)), "lz4")
}

func lz4Level(level int) lz4.CompressionLevel {
	if level <= 0 {
		return lz4.Fast
	}
	if level > len(lz4Levels) {
		level = len(lz4Levels)
	}

	return lz4Levels[level-1]
}
