package cmd

import "sync"

const (
	pooledBufferSize = 64 * 1024
	maxPooledBuffer  = 4 * 1024 * 1024
)

var bufferPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, pooledBufferSize)
	},
}

func getBuffer() []byte {
	return bufferPool.Get().([]byte)
}

func putBuffer(buf []byte) {
	if cap(buf) > maxPooledBuffer { // Don't pool very large buffers
		return
	}
	bufferPool.Put(buf[:0])
}
