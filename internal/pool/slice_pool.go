package pool

import "sync"

// byteSlicePool reuses compression scratch buffers across calls. Scratch
// buffers are sized by the codec's worst-case bound and released on every
// exit path, so pooling keeps steady-state compression allocation-free.
var byteSlicePool = sync.Pool{
	New: func() any { return &[]byte{} },
}

// GetByteSlice retrieves a zero-length byte slice with at least the given
// capacity from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function to return the slice to
// the pool, and must not retain the slice afterwards.
//
// Parameters:
//   - capacity: The minimum capacity of the returned slice
//
// Returns:
//   - []byte: A zero-length slice with capacity >= capacity
//   - func(): Cleanup function that must be called (typically with defer) to return the slice to the pool
//
// Example:
//
//	scratch, cleanup := pool.GetByteSlice(bound)
//	defer cleanup()
//	// Use scratch...
func GetByteSlice(capacity int) ([]byte, func()) {
	ptr, _ := byteSlicePool.Get().(*[]byte)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]byte, 0, capacity)
		*ptr = slice
	}

	return slice, func() { byteSlicePool.Put(ptr) }
}
