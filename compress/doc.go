// Package compress provides the compression codecs used for archive payloads.
//
// Every codec produces a self-identifying stream: the compressed output
// starts with the format's standard magic-byte prefix, so a stored payload
// needs no out-of-band algorithm tag. The archive layer inspects the prefix
// to decide whether a payload is compressed at all and with which format.
//
// # Architecture
//
// The package defines one interface:
//
//	type Codec interface {
//	    Type() format.CompressionType
//	    Magic() []byte
//	    Bound(srcLen int) int
//	    DefaultLevel() int
//	    MaxLevel() int
//	    Compress(dst, src []byte, level int) ([]byte, error)
//	    Decompress(dst, src []byte) ([]byte, error)
//	}
//
// Compress and Decompress are append-style: they extend dst and return the
// extended slice, following the EncodeAll/DecodeAll convention. A destination
// with Bound(len(src)) capacity never reallocates during compression. For
// decompression the destination capacity is a hard bound derived from the
// payload's declared original size; streams that decode past it fail instead
// of growing the buffer.
//
// # Supported Formats
//
// **Zstandard** (format.CompressionZstd)
//
//	codec := compress.NewZstdCodec()
//
// The preferred archive format. Levels 1-22, default 3. Magic 28 b5 2f fd.
// Two backends share the codec type: the default pure-Go implementation
// (klauspost/compress/zstd) and cgo libzstd bindings (valyala/gozstd) behind
// the gozstd build tag. Both emit standard frames and read each other's
// output.
//
// **Zlib** (format.CompressionZlib)
//
//	codec := compress.NewZlibCodec()
//
// The historical archive format (RFC 1950). Levels 1-9, default -1 (the
// deflate "use default" sentinel). Signature byte 78.
//
// **LZ4 frame** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Codec()
//
// Fast decompression at a moderate ratio. Levels 1-9 select the HC match
// finder; level 0 and below select the fast path. Magic 04 22 4d 18.
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCodec()
//
// Bypasses data untouched. Useful for benchmarking and for archives of
// incompressible content.
//
// # Choosing a Format
//
// | Workload                  | Recommended | Reason                         |
// |---------------------------|-------------|--------------------------------|
// | General archival          | Zstd        | Best ratio, fast decompression |
// | Cold storage              | Zstd 19-22  | Maximum space savings          |
// | Read-heavy archives       | LZ4         | Fastest decompression          |
// | Legacy interchange        | Zlib        | Universally readable           |
// | Pre-compressed content    | None        | No CPU overhead                |
//
// # Thread Safety
//
// All codecs are safe for concurrent use. The zstd backends pool their
// encoder and decoder state internally; the other codecs hold no state.
//
// # Error Handling
//
// Compression errors are rare (invalid level, writer failure). Decompression
// errors cover corrupt streams, checksum mismatches, truncated input, and
// output exceeding the destination bound. All errors are wrapped with the
// format name for debugging.
package compress
