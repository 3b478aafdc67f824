package sqlar

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/sqlar/format"
)

// Stats describes the outcome of a single compression operation.
//
// This is useful for monitoring and for archive tooling that reports
// per-entry space savings.
type Stats struct {
	// Algorithm is the format actually stored: the codec's type when the
	// compressed form won, CompressionNone when the payload passed through.
	Algorithm format.CompressionType

	// OriginalSize is the payload size before compression.
	OriginalSize int64

	// StoredSize is the size of the stored representation.
	StoredSize int64

	// Checksum is the XXH64 digest of the original payload, computed before
	// compression. Verifying it after Uncompress confirms a lossless
	// round trip.
	Checksum uint64
}

// CompressionRatio returns stored size divided by original size.
//
// Values below 1.0 indicate the compressed form was kept; exactly 1.0 means
// the payload was stored raw.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s Stats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.StoredSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Checksum returns the XXH64 digest of payload, the same digest recorded in
// Stats.Checksum.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}

// CompressWithStats behaves like Compress and additionally reports what was
// stored: the format that won, both sizes, and the payload's XXH64 digest.
func (a *Archiver) CompressWithStats(payload []byte, level int) ([]byte, Stats, error) {
	stored, err := a.Compress(payload, level)
	if err != nil {
		return nil, Stats{}, err
	}

	// The compressed form is only ever kept when strictly smaller, so an
	// unchanged length means the payload was stored raw.
	algorithm := format.CompressionNone
	if len(stored) < len(payload) {
		algorithm = a.codec.Type()
	}

	stats := Stats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(payload)),
		StoredSize:   int64(len(stored)),
		Checksum:     xxhash.Sum64(payload),
	}

	return stored, stats, nil
}
