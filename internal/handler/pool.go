package handler

import (
	"bytes"
	"sync"
)

// Response buffer sizing. A settlement with its nine-cell grid encodes to
// roughly a kilobyte; play and ledger listings can grow far beyond that.
const (
	responseBufferSize     = 1 << 10
	maxPooledResponseBytes = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless a large listing grew it past the pooling limit.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledResponseBytes {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
