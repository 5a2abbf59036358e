package strictread

import (
	"fmt"
	"io"
)

type inputStream interface {
	Read(buff []byte) (n int, err error)
}

// eof marks the end of the stream when a byte is expected.
const eof = -1

const maxConsecutiveEmptyReads = 100

type source struct {
	fd    inputStream
	buff  []byte
	undo  []byte
	pos   int
	size  int
	err   error
	line  int
	reads int
	in    int
}

func newBufferedSource(fd inputStream, buffSize int) *source {
	src := new(source)
	src.fd = fd
	src.buff = make([]byte, buffSize)
	src.undo = make([]byte, 0, buffSize)
	src.pos = 0
	src.size = 0
	src.line = 1
	return src
}

func (src *source) hasNext() (bool, error) {
	if len(src.undo) > 0 {
		return true, nil
	}
	if src.hasUnreadInput() {
		return true, nil
	}
	if src.err == nil {
		src.loadData()
	}
	if src.hasUnreadInput() {
		return true, nil
	}
	if src.err == io.EOF {
		return false, nil
	}
	return false, src.err
}

// readByte returns the next byte of the stream, or eof once it is
// exhausted. Pushed back bytes come first, in LIFO order, and are never
// counted by the line counter again.
func (src *source) readByte() (int, error) {
	if n := len(src.undo); n > 0 {
		ch := src.undo[n-1]
		src.undo = src.undo[:n-1]
		return int(ch), nil
	}

	has, err := src.hasNext()
	if err != nil {
		return eof, err
	}
	if !has {
		return eof, nil
	}

	ch := src.removeByte()
	if isNewLine(int(ch)) {
		src.line += 1
	}
	return int(ch), nil
}

// pushBack stages ch for re-delivery ahead of the stream. Only bytes just
// read from this source go back in, so the line counter stays put.
func (src *source) pushBack(ch byte) {
	src.undo = append(src.undo, ch)
}

func (src *source) removeByte() byte {
	ch := src.buff[src.pos]
	src.pos += 1
	return ch
}

func (src *source) hasUnreadInput() bool {
	return src.size > 0 && src.pos < src.size
}

// loadData refills the buffer from the stream. A stream may hand over its
// last bytes together with an error, so the bytes are kept and the error is
// held back until the buffer drains.
func (src *source) loadData() {
	for i := 0; i < maxConsecutiveEmptyReads; i++ {
		nbytes, err := src.fd.Read(src.buff)
		if nbytes < 0 {
			panic(fmt.Errorf("Input stream returned a negative count %v", nbytes))
		}
		src.pos = 0
		src.size = nbytes
		if nbytes > 0 {
			src.reads += 1
			src.in += nbytes
			if err != nil {
				src.err = err
			}
			return
		}
		if err != nil {
			src.err = err
			return
		}
	}
	src.err = io.ErrNoProgress
}

func (src *source) currentLine() int {
	return src.line
}

func (src *source) numOfReads() int {
	return src.reads
}

func (src *source) bytesIn() int {
	return src.in
}
