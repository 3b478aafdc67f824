package sqlar

import "errors"

// Sentinel errors reported by the transforms. Codec-level causes are wrapped
// underneath, so callers can match the kind with errors.Is and still inspect
// the codec error.
var (
	// ErrCompress reports that the codec failed while compressing a payload.
	ErrCompress = errors.New("sqlar: compress failed")

	// ErrUncompress reports that the codec failed while decompressing a
	// payload that carried the expected format signature, or that the
	// declared size exceeded the configured limit. A signature mismatch is
	// never an error; such payloads pass through unchanged.
	ErrUncompress = errors.New("sqlar: uncompress failed")
)
