// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth     = 16
	formatPCM    = 1
	chunkSamples = 8192
)

// WriteWAV16 writes interleaved 16-bit PCM samples as a WAV file.
//
// The header is finalised on return, which is why w must be seekable
// (e.g., an *os.File).
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(samples)%channels != 0 {
		return ErrPartialFrame
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	// Convert in chunks to bound the size of the intermediate []int.
	data := make([]int, 0, min(len(samples), chunkSamples))
	for start := 0; start < len(samples); start += chunkSamples {
		end := min(start+chunkSamples, len(samples))

		data = data[:0]
		for _, s := range samples[start:end] {
			data = append(data, int(s))
		}
		buf.Data = data

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("write wav samples: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalise wav: %w", err)
	}
	return nil
}
