package httpvalidator

import (
	"bytes"
	"sync"
)

const (
	requestResultErrorsCap   = 8
	requestResultWarningsCap = 4

	// bufferPoolMaxCap keeps oversized buffers out of the pool so one
	// large body does not pin memory for the process lifetime.
	bufferPoolMaxCap = 1 << 20
)

var requestResultPool = sync.Pool{
	New: func() any {
		return &RequestValidationResult{
			Errors:   make([]ValidationError, 0, requestResultErrorsCap),
			Warnings: make([]ValidationError, 0, requestResultWarningsCap),
		}
	},
}

// getRequestResult retrieves a RequestValidationResult from the pool and resets it.
func getRequestResult() *RequestValidationResult {
	r := requestResultPool.Get().(*RequestValidationResult)
	r.reset()
	return r
}

// putRequestResult returns a RequestValidationResult to the pool.
func putRequestResult(r *RequestValidationResult) {
	if r == nil {
		return
	}
	requestResultPool.Put(r)
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// getBuffer retrieves an empty buffer from the pool.
func getBuffer() *bytes.Buffer {
	b := bufferPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

// putBuffer returns a buffer to the pool unless it grew past the cap.
func putBuffer(b *bytes.Buffer) {
	if b == nil || b.Cap() > bufferPoolMaxCap {
		return
	}
	bufferPool.Put(b)
}
