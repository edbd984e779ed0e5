package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

var ErrUnknownCodec = errors.New("output: unknown codec")

// Codec selects the compression applied to raw frame payloads
type Codec byte

const (
	CodecNone Codec = iota
	CodecZstd
	CodecSnappy
)

// ParseCodec maps "none", "zstd" or "snappy" to a Codec
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CodecNone, nil
	case "zstd", "zst":
		return CodecZstd, nil
	case "snappy", "sz":
		return CodecSnappy, nil
	}
	return CodecNone, fmt.Errorf("%w %q", ErrUnknownCodec, name)
}

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecZstd:
		return "zstd"
	case CodecSnappy:
		return "snappy"
	}
	return fmt.Sprintf("codec(%d)", byte(c))
}

// Extension returns the file suffix conventionally used for the codec
func (c Codec) Extension() string {
	switch c {
	case CodecZstd:
		return ".rkf.zst"
	case CodecSnappy:
		return ".rkf.sz"
	}
	return ".rkf"
}

// newWriter wraps w with the codec's compressor. Closing the returned writer
// flushes the compressor but leaves w open.
func (c Codec) newWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecNone:
		return nopWriteCloser{w}, nil
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecSnappy:
		return snappy.NewBufferedWriter(w), nil
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownCodec, byte(c))
}

// newReader wraps r with the codec's decompressor
func (c Codec) newReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecNone:
		return io.NopCloser(r), nil
	case CodecZstd:
		decoder, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return decoder.IOReadCloser(), nil
	case CodecSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownCodec, byte(c))
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
