package compress

import (
	"errors"
	"fmt"
	"io"
)

// readBounded drains the decompressing reader r into the spare capacity of
// dst and returns the extended slice. The capacity is a hard bound: a stream
// holding more bytes fails instead of growing the buffer. A dst with no
// spare capacity reads unbounded.
//
// A stream that ends cleanly before filling the buffer is not an error; the
// caller receives exactly the bytes that were decoded. Truncated input
// surfaces as the decompressor's own error (io.ErrUnexpectedEOF or a format
// error), which is reported, not swallowed.
func readBounded(dst []byte, r io.Reader, name string) ([]byte, error) {
	base := len(dst)
	limit := cap(dst)

	if limit == base {
		decoded, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%s decompression failed: %w", name, err)
		}

		return append(dst, decoded...), nil
	}

	buf := dst[base:limit]
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if errors.Is(err, io.EOF) {
			return dst[:base+n], nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s decompression failed: %w", name, err)
		}
	}

	// Buffer full: probe one byte further. This detects oversized streams
	// and lets checksum-trailing formats verify their checksum at EOF.
	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err == nil {
		return nil, fmt.Errorf("%s: decompressed size exceeds buffer capacity %d", name, limit-base)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s decompression failed: %w", name, err)
	}

	return dst[:limit], nil
}
