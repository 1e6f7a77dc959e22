// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Wave returns the value of channel ch at frame n.
type Wave func(n, ch int) float32

// Synth is a finite audio.Source computed from a Wave.
type Synth struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Wave
	err      error
	closed   bool
}

// NewSynth returns a source of frames frames at rate Hz.
func NewSynth(rate, channels, frames int, wave Wave) *Synth {
	return &Synth{rate: rate, channels: channels, frames: frames, wave: wave}
}

func NewSilentSource(rate, channels, frames int) *Synth {
	return NewConstantSource(rate, channels, frames, 0)
}

// NewSineSource plays a full-scale sine of freq Hz on every channel.
func NewSineSource(rate, channels, frames int, freq float64) *Synth {
	step := 2 * math.Pi * freq / float64(rate)
	return NewSynth(rate, channels, frames, func(n, _ int) float32 {
		return float32(math.Sin(step * float64(n)))
	})
}

func NewConstantSource(rate, channels, frames int, value float32) *Synth {
	return NewSynth(rate, channels, frames, func(int, int) float32 { return value })
}

// NewChannelSource holds channel i at values[i].
func NewChannelSource(rate, frames int, values ...float32) *Synth {
	return NewSynth(rate, len(values), frames, func(_, ch int) float32 { return values[ch] })
}

func (s *Synth) SampleRate() int { return s.rate }
func (s *Synth) Channels() int   { return s.channels }
func (s *Synth) BufSize() int    { return 4096 }

func (s *Synth) Close() error {
	s.closed = true
	return nil
}

// FailWith makes the source end with err instead of io.EOF. The last
// samples are delivered together with err.
func (s *Synth) FailWith(err error) *Synth {
	s.err = err
	return s
}

func (s *Synth) end() error {
	if s.err != nil {
		return s.err
	}
	return io.EOF
}

// Closed reports whether Close was called.
func (s *Synth) Closed() bool { return s.closed }

// ReadSamples fills whole frames of dst. The final chunk comes with io.EOF
// or the error set by FailWith.
func (s *Synth) ReadSamples(dst []float32) (int, error) {
	left := s.frames - s.pos
	if left <= 0 {
		return 0, s.end()
	}

	n := min(len(dst)/s.channels, left)
	i := 0
	for f := s.pos; f < s.pos+n; f++ {
		for ch := range s.channels {
			dst[i] = s.wave(f, ch)
			i++
		}
	}
	s.pos += n

	if s.pos == s.frames {
		return i, s.end()
	}
	return i, nil
}
