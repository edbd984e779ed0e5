package output

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/df07/go-ray-kernel/pkg/core"
	"github.com/df07/go-ray-kernel/pkg/renderer"
)

// Raw frame layout, all integers little-endian:
//
//	magic  [4]byte "RKF1"   uncompressed
//	codec  byte             uncompressed
//	width  uint32           compressed from here on
//	height uint32
//	pixels [width*height*3]float32, row-major from the top row, linear RGB
const rawMagic = "RKF1"

// maxRawPixels bounds allocations when reading untrusted files
const maxRawPixels = 1 << 28

var ErrBadMagic = errors.New("output: not a raw frame file")

// WriteRaw writes frame to path as a raw float frame compressed with codec
func WriteRaw(path string, frame *renderer.Frame, codec Codec) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create raw frame: %w", err)
	}

	if err := EncodeRaw(file, frame, codec); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// EncodeRaw writes the raw frame encoding of frame to w
func EncodeRaw(w io.Writer, frame *renderer.Frame, codec Codec) error {
	if _, err := io.WriteString(w, rawMagic); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(codec)}); err != nil {
		return err
	}

	stream, err := codec.newWriter(w)
	if err != nil {
		return err
	}

	buffered := bufio.NewWriter(stream)
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(frame.Width))
	binary.LittleEndian.PutUint32(header[4:8], uint32(frame.Height))
	if _, err := buffered.Write(header); err != nil {
		stream.Close()
		return err
	}

	// One row at a time keeps the staging buffer small
	row := make([]byte, frame.Width*12)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			offset := x * 12
			binary.LittleEndian.PutUint32(row[offset:], math.Float32bits(float32(c.X)))
			binary.LittleEndian.PutUint32(row[offset+4:], math.Float32bits(float32(c.Y)))
			binary.LittleEndian.PutUint32(row[offset+8:], math.Float32bits(float32(c.Z)))
		}
		if _, err := buffered.Write(row); err != nil {
			stream.Close()
			return err
		}
	}

	if err := buffered.Flush(); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

// ReadRaw reads a raw frame written by WriteRaw. The codec is taken from the
// file itself, not from its extension.
func ReadRaw(path string) (*renderer.Frame, Codec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, CodecNone, fmt.Errorf("failed to open raw frame: %w", err)
	}
	defer file.Close()

	return DecodeRaw(bufio.NewReader(file))
}

// DecodeRaw reads one raw frame from r
func DecodeRaw(r io.Reader) (*renderer.Frame, Codec, error) {
	prefix := make([]byte, len(rawMagic)+1)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, CodecNone, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if string(prefix[:len(rawMagic)]) != rawMagic {
		return nil, CodecNone, ErrBadMagic
	}
	codec := Codec(prefix[len(rawMagic)])

	stream, err := codec.newReader(r)
	if err != nil {
		return nil, codec, err
	}
	defer stream.Close()

	header := make([]byte, 8)
	if _, err := io.ReadFull(stream, header); err != nil {
		return nil, codec, fmt.Errorf("failed to read frame header: %w", err)
	}
	width := int(binary.LittleEndian.Uint32(header[0:4]))
	height := int(binary.LittleEndian.Uint32(header[4:8]))
	if width <= 0 || height <= 0 || width*height > maxRawPixels {
		return nil, codec, fmt.Errorf("%w: got %dx%d", renderer.ErrInvalidDimensions, width, height)
	}

	frame := renderer.NewFrame(width, height)
	row := make([]byte, width*12)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(stream, row); err != nil {
			return nil, codec, fmt.Errorf("failed to read row %d: %w", y, err)
		}
		for x := 0; x < width; x++ {
			offset := x * 12
			frame.Set(x, y, core.NewVec3(
				float64(math.Float32frombits(binary.LittleEndian.Uint32(row[offset:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(row[offset+4:]))),
				float64(math.Float32frombits(binary.LittleEndian.Uint32(row[offset+8:]))),
			))
		}
	}

	return frame, codec, nil
}
