package input

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/kalukad/MM-Kinetics-app/fit"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// multiReadCloser closes every attached closer when Close is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open opens path for reading, transparently decompressing gzip, zstd and
// lz4 content detected by magic number. "-" reads from stdin (without
// decompression, since stdin cannot be rewound).
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var sig [4]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, err
	}

	switch {
	case n >= 2 && bytes.Equal(sig[:2], gzipMagic):
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}

		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil

	case n >= 4 && bytes.Equal(sig[:4], zstdMagic):
		zr, err := zstd.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		closeDecoder := closerFunc(func() error {
			zr.Close()
			return nil
		})

		return &multiReadCloser{Reader: zr, closers: []io.Closer{closeDecoder, fh}}, nil

	case n >= 4 && bytes.Equal(sig[:4], lz4Magic):
		return &multiReadCloser{Reader: lz4.NewReader(fh), closers: []io.Closer{fh}}, nil

	default:
		return fh, nil
	}
}

// ReadFile opens path and parses it with ReadTable.
func ReadFile(path string) (*fit.Dataset, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return ReadTable(rc)
}
