package sieve

import "sync"

// DefaultSegmentSize is the default width of one segment.
const DefaultSegmentSize = 1_000_000

// bufferPool recycles segment marking buffers so that repeated runs and
// short-lived workers do not churn the allocator. Buffers are sized to the
// default segment width; oversized requests fall through to a plain make.
var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, DefaultSegmentSize)
	},
}

// GetBuffer returns a marking buffer with at least size bytes.
func GetBuffer(size int) []byte {
	if size > DefaultSegmentSize {
		return make([]byte, size)
	}
	return bufferPool.Get().([]byte)
}

// PutBuffer returns a buffer obtained from GetBuffer to the pool.
// Oversized buffers are dropped rather than pinned in the pool.
func PutBuffer(buf []byte) {
	if cap(buf) != DefaultSegmentSize {
		return
	}
	bufferPool.Put(buf[:DefaultSegmentSize]) //nolint:staticcheck // slice header is pooled intentionally
}
