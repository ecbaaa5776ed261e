package richards

import (
	"bufio"
	"io"
	"strconv"
)

const traceLineWidth = 50

// tracer keeps the first write error and stops writing after it.
type tracer struct {
	w      io.Writer
	buf    *bufio.Writer
	layout int
	err    error
}

func (t *tracer) trace(id int) {
	if t.err != nil {
		return
	}
	if t.buf == nil {
		t.buf = bufio.NewWriter(t.w)
	}

	t.layout--
	if t.layout <= 0 {
		if t.err = t.buf.WriteByte('\n'); t.err != nil {
			return
		}
		t.layout = traceLineWidth
	}
	_, t.err = t.buf.WriteString(strconv.Itoa(id))
}

func (t *tracer) flush() {
	if t == nil || t.buf == nil || t.err != nil {
		return
	}
	t.err = t.buf.Flush()
}

func (t *tracer) writeErr() error {
	if t == nil {
		return nil
	}
	return t.err
}
