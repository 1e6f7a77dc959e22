// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/fcdec/utils"
)

// DefaultBufFrames is the number of frames a PCM16 source pulls from its
// reader at a time.
const DefaultBufFrames = 1024

// PCM16Source turns a stream of interleaved, little-endian, signed 16-bit
// samples into a Source.
//
// The reader is always asked for whole chunks of bufFrames frames, so a
// reader that renders on demand (such as a decoder session) sees reads of a
// stable size however the downstream stage consumes samples.
type PCM16Source struct {
	r          io.Reader
	sampleRate int
	channels   int

	chunk []byte
	off   int // read offset into chunk
	end   int // valid bytes in chunk
	eof   bool
}

// NewPCM16Source wraps r. bufFrames <= 0 selects DefaultBufFrames.
func NewPCM16Source(r io.Reader, sampleRate, channels, bufFrames int) (*PCM16Source, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, ErrInvalidFormat
	}
	if bufFrames <= 0 {
		bufFrames = DefaultBufFrames
	}

	return &PCM16Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   channels,
		chunk:      make([]byte, bufFrames*channels*2),
	}, nil
}

func (s *PCM16Source) SampleRate() int { return s.sampleRate }
func (s *PCM16Source) Channels() int   { return s.channels }
func (s *PCM16Source) BufSize() int    { return len(s.chunk) / 2 }

// Close closes the underlying reader when it is an io.Closer.
func (s *PCM16Source) Close() error {
	c, ok := s.r.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *PCM16Source) fill() error {
	n, err := io.ReadFull(s.r, s.chunk)
	// Drop a trailing partial sample.
	s.off, s.end = 0, n&^1

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
		return nil
	default:
		return fmt.Errorf("%w", err)
	}
}

func (s *PCM16Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if s.off >= s.end {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				return written, err
			}
			continue
		}

		for s.off < s.end && written < len(dst) {
			v := int16(binary.LittleEndian.Uint16(s.chunk[s.off : s.off+2]))
			dst[written] = utils.Int16ToFloat32(v)
			written++
			s.off += 2
		}
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}
	return written, nil
}
