package xec

import (
	"bytes"
	"io"
	"strings"
)

// lineWriter returns an io.Writer that splits everything written to it
// into lines, and passes each line to fn with the line terminator
// and any other trailing whitespace removed.
//
// The flush function must be called after the writer is no longer in use.
// It passes any remaining partial line to fn.
//
// The returned writer is not thread-safe.
func lineWriter(fn func(line string)) (w io.Writer, flush func()) {
	lw := &lineFuncWriter{fn: fn}
	return lw, lw.flush
}

type lineFuncWriter struct {
	fn  func(string)
	buf bytes.Buffer
}

func (w *lineFuncWriter) Write(p []byte) (int, error) {
	total := len(p)
	for {
		idx := bytes.IndexByte(p, '\n')
		if idx < 0 {
			w.buf.Write(p)
			return total, nil
		}

		w.buf.Write(p[:idx])
		w.emit()
		p = p[idx+1:]
	}
}

func (w *lineFuncWriter) flush() {
	if w.buf.Len() > 0 {
		w.emit()
	}
}

func (w *lineFuncWriter) emit() {
	line := strings.TrimRight(w.buf.String(), " \t\r")
	w.buf.Reset()
	w.fn(line)
}
