package util

import (
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"io"
	"os"
	"strings"
)

type layeredReader struct {
	io.Reader
	closers []func() error
}

// Close releases every layer, outermost first, and reports all failures.
func (l *layeredReader) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c())
	}
	return CombineErrors(errs...)
}

// OpenInput opens path for reading, transparently decompressing .gz and .zst files.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(path)
	switch {
	case strings.HasSuffix(name, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, CombineErrors(err, f.Close())
		}
		return &layeredReader{Reader: zr, closers: []func() error{zr.Close, f.Close}}, nil
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, CombineErrors(err, f.Close())
		}
		closeDecoder := func() error {
			zr.Close()
			return nil
		}
		return &layeredReader{Reader: zr, closers: []func() error{closeDecoder, f.Close}}, nil
	default:
		return f, nil
	}
}
