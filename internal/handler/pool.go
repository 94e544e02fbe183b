package handler

import (
	"bytes"
	"sync"
)

const (
	// responseBufferSize fits a loyalty summary with a full set of offers
	responseBufferSize = 2 << 10

	// maxPooledBufferSize keeps one oversized response (a large badge catalog) from pinning memory
	maxPooledBufferSize = 64 << 10
)

var responseBufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBufferPool.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it grew past maxPooledBufferSize
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBufferPool.Put(buf)
}
