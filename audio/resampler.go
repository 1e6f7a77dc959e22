// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/fcdec/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. A one-pole low-pass filter is applied to the input when
// downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// hist holds four consecutive source frames t-1, t0, t+1 and t+2.
	// Output is interpolated between hist[1] and hist[2].
	hist [4][]float32
	real [4]bool
	pos  float64

	in     []float32
	inOff  int
	inLen  int
	srcEOF bool
	// srcErr is reported once the frames read along with it are used up.
	srcErr error

	primed bool
	done   bool

	lowpass bool
	alpha   float32
	state   []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	block := src.BufSize()
	if block < channels {
		block = 4096
	}
	block -= block % channels

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, block),
		lowpass:  step > 1.0,
		alpha:    0.5,
		state:    make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// nextFrame copies the next source frame into dst.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.inOff+r.channels > r.inLen {
		if r.srcErr != nil {
			return false, r.srcErr
		}
		if r.srcEOF {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.in)
		r.inOff, r.inLen = 0, n-n%r.channels
		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			r.srcErr = fmt.Errorf("%w", err)
		case n == 0:
			r.srcEOF = true
		}
	}

	copy(dst, r.in[r.inOff:r.inOff+r.channels])
	r.inOff += r.channels

	if r.lowpass {
		if !r.primed && !r.real[1] {
			// Seed the filter with the first frame to avoid a fade-in.
			copy(r.state, dst)
		}
		for c := range dst {
			dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.state[c]
			r.state[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = false

	ok, err := r.nextFrame(r.hist[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return nil
	}
	r.real[1] = true
	copy(r.hist[0], r.hist[1])

	for i := 2; i < 4; i++ {
		ok, err := r.nextFrame(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
		r.real[i] = ok
	}

	r.primed = true
	return nil
}

// advance shifts the history by one source frame.
func (r *Resampler) advance() error {
	r.hist[0], r.hist[1], r.hist[2], r.hist[3] = r.hist[1], r.hist[2], r.hist[3], r.hist[0]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]

	ok, err := r.nextFrame(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	r.real[3] = ok

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done && r.srcErr != nil {
		return 0, r.srcErr
	}
	if !r.primed && !r.done {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames && !r.done {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				r.done = true
				return written * r.channels, err
			}
		}
		if !r.real[2] {
			r.done = true
			break
		}

		alpha := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], alpha)
		}

		written++
		r.pos += r.step
	}

	if written == 0 && r.done {
		return 0, io.EOF
	}
	return written * r.channels, nil
}
