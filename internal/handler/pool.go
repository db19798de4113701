package handler

import (
	"bytes"
	"sync"
)

const (
	// initialBufferSize fits a typical action response
	initialBufferSize = 512

	// maxPooledBufferSize keeps the occasional full-state response of a
	// large farm from pinning its buffer in the pool
	maxPooledBufferSize = 64 << 10
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
