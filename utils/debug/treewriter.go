// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const defaultIndent = "  "

// TreeWriter accumulates indented lines of a tree dump.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: defaultIndent,
	}
}

// WithIndent changes string used for a single level of indentation.
func (tw *TreeWriter) WithIndent(indent string) *TreeWriter {
	tw.indent = indent
	return tw
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// WriteTo writes accumulated dump to w, implementing io.WriterTo.
func (tw TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.w.String())
	return int64(n), err
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label with quoted value, empty value is left as is.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
