// Package sizes measures stylesheet size: raw, compressed and human readable.
package sizes

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"cssm/common"
)

// Compressor reports how many bytes data occupies after compression.
type Compressor interface {
	Name() string
	CompressedSize(data []byte) (int64, error)
}

// CompressionError is returned when compressed size cannot be computed.
type CompressionError struct {
	Algorithm string
	Err       error
}

func (e *CompressionError) Error() string {
	return fmt.Sprintf("unable to compress with %s: %v", e.Algorithm, e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// NewCompressor returns compressor for requested algorithm. Level 0 selects
// algorithm default.
func NewCompressor(alg common.Compression, level int) (Compressor, error) {
	switch alg {
	case common.CompressionGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		if level < gzip.HuffmanOnly || level > gzip.BestCompression {
			return nil, fmt.Errorf("gzip compression level %d is out of range [%d, %d]", level, gzip.HuffmanOnly, gzip.BestCompression)
		}
		return &Gzip{Level: level}, nil
	case common.CompressionZstd:
		if level < 0 || level > 22 {
			return nil, fmt.Errorf("zstd compression level %d is out of range [0, 22]", level)
		}
		return &Zstd{Level: level}, nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm %q", alg)
	}
}

// Gzip measures gzip stream size, header and trailer included.
type Gzip struct {
	Level int
}

func (*Gzip) Name() string { return common.CompressionGzip.String() }

func (c *Gzip) CompressedSize(data []byte) (int64, error) {
	var cw countingWriter
	w, err := gzip.NewWriterLevel(&cw, c.Level)
	if err != nil {
		return 0, &CompressionError{Algorithm: c.Name(), Err: err}
	}
	if err := writeAll(w, data); err != nil {
		return 0, &CompressionError{Algorithm: c.Name(), Err: err}
	}
	return cw.n, nil
}

// Zstd measures zstd frame size.
type Zstd struct {
	Level int // zstd level 1-22, 0 for encoder default
}

func (*Zstd) Name() string { return common.CompressionZstd.String() }

func (c *Zstd) CompressedSize(data []byte) (int64, error) {
	opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
	if c.Level > 0 {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.Level)))
	}

	var cw countingWriter
	w, err := zstd.NewWriter(&cw, opts...)
	if err != nil {
		return 0, &CompressionError{Algorithm: c.Name(), Err: err}
	}
	if err := writeAll(w, data); err != nil {
		return 0, &CompressionError{Algorithm: c.Name(), Err: err}
	}
	return cw.n, nil
}

func writeAll(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// countingWriter discards everything written, keeping byte count.
type countingWriter struct {
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	cw.n += int64(len(p))
	return len(p), nil
}
