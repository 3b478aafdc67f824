// Package sqlar implements the payload compression transforms used by
// row-oriented archive stores.
//
// An archive persists each file's content as a blob alongside its original
// (pre-compression) size. The blob is either raw or compressed with a
// self-identifying format: compressed blobs start with the codec's standard
// magic bytes, so no algorithm tag needs to be stored. This package provides
// the two transforms that sit between the archive rows and their content:
//
//   - Compress turns raw content into the stored representation, keeping the
//     compressed form only when it is strictly smaller than the original.
//   - Uncompress turns a stored representation back into the original
//     content, using the declared original size and the magic-byte signature
//     to decide whether decompression is needed at all.
//
// # Basic Usage
//
//	import "github.com/arloliu/sqlar"
//
//	// Compress file content for storage (level -1 = codec default)
//	stored, err := sqlar.Compress(content, sqlar.LevelDefault)
//	if err != nil {
//	    return err
//	}
//	// Persist stored together with len(content)...
//
//	// Restore the original content
//	content, err = sqlar.Uncompress(stored, originalSize)
//
// The package-level functions use a shared Zstandard Archiver. Hosts that
// need a different format, or limits on decode allocations, create their own
// handle:
//
//	ar, err := sqlar.New(
//	    sqlar.WithCompression(format.CompressionZlib),
//	    sqlar.WithMaxDecodedSize(1<<30),
//	)
//
// # Storage Contract
//
// Callers must persist the original size next to each stored blob: the
// decoder needs it both to size its output buffer and to recognize raw
// storage (a declared size equal to the stored length, or not positive,
// means the blob was stored raw). Nothing else is required; the compressed
// formats identify themselves by their leading bytes.
//
// # Round-Trip Invariant
//
// For any payload p and supported level l:
//
//	out, _ := ar.Compress(p, l)
//	back, _ := ar.Uncompress(out, len(p))
//	// back is byte-for-byte equal to p
//
// A blob that does not carry the configured codec's signature is never
// decompressed; it is returned unchanged. This tolerates data written raw or
// by an alternate format version without ever feeding foreign bytes to the
// codec.
package sqlar

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/arloliu/sqlar/compress"
	"github.com/arloliu/sqlar/format"
	"github.com/arloliu/sqlar/internal/pool"
)

// Compression level sentinels recognized by Compress.
const (
	// LevelDefault selects the configured codec's default level.
	LevelDefault = -1

	// LevelStore forces raw storage: the payload is returned unchanged
	// regardless of how well it would compress.
	LevelStore = 0
)

// Archiver applies the archive compression policy on top of a single codec.
//
// Both transforms are pure: each call allocates its own buffers and touches
// no shared mutable state, so one Archiver is safe for concurrent use.
type Archiver struct {
	codec          compress.Codec
	maxDecodedSize int
}

// Option configures an Archiver.
type Option func(*Archiver) error

// WithCompression selects one of the built-in codecs by compression type.
func WithCompression(compressionType format.CompressionType) Option {
	return func(a *Archiver) error {
		codec, err := compress.GetCodec(compressionType)
		if err != nil {
			return err
		}
		a.codec = codec

		return nil
	}
}

// WithCodec installs a custom codec implementation.
func WithCodec(codec compress.Codec) Option {
	return func(a *Archiver) error {
		if codec == nil {
			return errors.New("codec cannot be nil")
		}
		a.codec = codec

		return nil
	}
}

// WithMaxDecodedSize caps the declared original size Uncompress accepts.
//
// The declared size is trusted input used as an allocation hint; a corrupt
// or hostile value could request an arbitrarily large buffer. A positive cap
// turns such requests into an ErrUncompress failure. The default (0) keeps
// the size unbounded.
func WithMaxDecodedSize(n int) Option {
	return func(a *Archiver) error {
		if n < 0 {
			return errors.New("max decoded size cannot be negative")
		}
		a.maxDecodedSize = n

		return nil
	}
}

// New creates an Archiver handle. Without options it uses the Zstandard
// codec and no decode size cap.
//
// Hosts embedding these transforms (a storage or query engine exposing them
// as functions) perform this initialization once at startup and hold on to
// the returned handle; the transforms themselves keep no process-wide state.
func New(opts ...Option) (*Archiver, error) {
	codec, err := compress.GetCodec(format.CompressionZstd)
	if err != nil {
		return nil, err
	}

	a := &Archiver{codec: codec}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Codec returns the codec the Archiver was configured with.
func (a *Archiver) Codec() compress.Codec {
	return a.codec
}

// Compress transforms payload into its stored representation.
//
// The level is normalized first: LevelDefault substitutes the codec's
// default, and levels above the codec's maximum clamp down to it. The
// payload is then compressed into a scratch buffer sized by the codec's
// worst-case bound, and the compressed form is kept only if it is strictly
// smaller than the input and the effective level is not LevelStore.
// Otherwise the payload itself is returned unchanged.
//
// An empty payload is returned unchanged without invoking the codec.
// A codec failure is reported as ErrCompress; it never silently falls back
// to raw storage.
//
// The returned slice is either the input payload (pass-through) or a newly
// allocated buffer owned by the caller.
func (a *Archiver) Compress(payload []byte, level int) ([]byte, error) {
	if len(payload) == 0 {
		return payload, nil
	}

	if level == LevelDefault {
		level = a.codec.DefaultLevel()
	} else if level > a.codec.MaxLevel() {
		level = a.codec.MaxLevel()
	}

	scratch, release := pool.GetByteSlice(a.codec.Bound(len(payload)))
	defer release()

	compressed, err := a.codec.Compress(scratch, payload, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompress, err)
	}

	if len(compressed) >= len(payload) || level == LevelStore {
		return payload, nil
	}

	out := make([]byte, len(compressed))
	copy(out, compressed)

	return out, nil
}

// Uncompress transforms a stored representation back into the original
// payload, given the declared original size persisted alongside it.
//
// A declared size that is not positive, or equal to the stored length, marks
// the payload as stored raw; it is returned unchanged. A payload that is too
// short to carry the codec's magic prefix, or whose leading bytes do not
// match it, is likewise returned unchanged rather than fed to the codec.
//
// Otherwise the payload is decompressed into a freshly allocated buffer of
// the declared size. The result is exactly the bytes the codec produced; a
// stream that decodes past the declared size fails with ErrUncompress, and a
// stream that decodes short is returned at its actual length.
func (a *Archiver) Uncompress(payload []byte, origSize int) ([]byte, error) {
	if origSize <= 0 || origSize == len(payload) {
		return payload, nil
	}

	magic := a.codec.Magic()
	if len(magic) == 0 || len(payload) <= len(magic) || !bytes.HasPrefix(payload, magic) {
		// not in the codec's format, copy as-is
		return payload, nil
	}

	if a.maxDecodedSize > 0 && origSize > a.maxDecodedSize {
		return nil, fmt.Errorf("%w: declared size %d exceeds limit %d", ErrUncompress, origSize, a.maxDecodedSize)
	}

	out, err := a.codec.Decompress(make([]byte, 0, origSize), payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUncompress, err)
	}

	return out, nil
}

var defaultArchiver = func() *Archiver {
	a, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to create default archiver: %v", err))
	}
	return a
}()

// Compress transforms payload into its stored representation using the
// shared Zstandard Archiver. See Archiver.Compress.
func Compress(payload []byte, level int) ([]byte, error) {
	return defaultArchiver.Compress(payload, level)
}

// Uncompress restores the original payload using the shared Zstandard
// Archiver. See Archiver.Uncompress.
func Uncompress(payload []byte, origSize int) ([]byte, error) {
	return defaultArchiver.Uncompress(payload, origSize)
}
