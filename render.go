// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"fmt"
	"time"

	"github.com/ik5/fcdec/audio"
	"github.com/ik5/fcdec/host"
)

// RenderOptions control Render.
type RenderOptions struct {
	// SampleRate of the result in Hz. Zero keeps the stream rate.
	SampleRate int
	// Mono folds the stereo output to a single channel.
	Mono bool
	// BufferSize is the read size in samples (default 4096).
	BufferSize int
	// MaxDuration stops rendering after this much audio. Zero renders
	// until the song ends, which for looping modules may be never unless
	// the short song cut-off applies.
	MaxDuration time.Duration
}

// Render is a high-level convenience function that pulls an initialised
// stream to its end and returns the audio as 16-bit PCM.
//
// This function creates a processing pipeline:
//  1. Wraps the stream's raw PCM in an audio.Source
//  2. Resamples to opts.SampleRate when it differs from the stream rate
//  3. Folds to mono when opts.Mono is set
//  4. Collects the samples as int16
//
// Returns the interleaved samples, the output sample rate and the output
// channel count.
//
// Example:
//
//	pcm, rate, chans, err := fcdec.Render(stream, fcdec.RenderOptions{SampleRate: 8000, Mono: true})
func Render(st host.Stream, opts RenderOptions) ([]int16, int, int, error) {
	format := st.Format()

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = 4096
	}

	pcm, err := audio.NewPCM16Source(st, format.SampleRate, format.Channels, bufSize/max(format.Channels, 1))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("render: %w", err)
	}

	var src audio.Source = pcm

	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		src = audio.NewResampler(src, opts.SampleRate)
	}
	if opts.Mono {
		src = audio.NewMonoMixer(src)
	}

	limit := 0
	if opts.MaxDuration > 0 {
		frames := int(int64(opts.MaxDuration) * int64(src.SampleRate()) / int64(time.Second))
		limit = max(frames, 1) * src.Channels()
	}

	pcm16, err := audio.CollectPCM16(src, bufSize, limit)
	if err != nil {
		return nil, src.SampleRate(), src.Channels(), fmt.Errorf("render: %w", err)
	}

	return pcm16, src.SampleRate(), src.Channels(), nil
}
