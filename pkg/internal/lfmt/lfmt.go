// Package lfmt contains helpers for writing formatted expression text.
package lfmt

import "io"

// WriteOp is a function that looks like w.Write but may involve many calls to
// w.Write and aggregate the result.
type WriteOp func(w io.Writer) (int, error)

// Writer is an io.Writer that tracks the total number of bytes written and
// the first error encountered.  After an error every write on a Writer is a
// noop, which lets recursive formatters write a sequence of tokens and check
// for failure once at the end.
type Writer struct {
	w   io.Writer
	n   int
	err error
}

var _ io.Writer = (*Writer)(nil)
var _ io.StringWriter = (*Writer)(nil)

// NewWriter wraps w as a counting Writer.  If w is already a *Writer it is
// returned unchanged so nested formatters share a single count.
func NewWriter(w io.Writer) *Writer {
	if cw, ok := w.(*Writer); ok {
		return cw
	}
	return &Writer{w: w}
}

func (w *Writer) count(n int, err error) (int, error) {
	w.n += n
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

// N returns the total number of bytes written.
func (w *Writer) N() int {
	return w.n
}

// Err returns the first error encountered by w.
func (w *Writer) Err() error {
	return w.err
}

// Result returns the total number of bytes written along with the first
// error encountered.
func (w *Writer) Result() (int, error) {
	return w.n, w.err
}

// Write implements io.Writer
func (w *Writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.count(w.w.Write(b))
}

// WriteString implements io.StringWriter
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.count(io.WriteString(w.w, s))
}

// Do passes the underlying io.Writer to op and counts the reported number of
// bytes using op's return value.  Do is a noop if w has already encountered an
// error.
func (w *Writer) Do(op WriteOp) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.count(op(w.w))
}
