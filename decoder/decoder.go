// SPDX-License-Identifier: EPL-2.0

// Package decoder defines the contract of a Future Composer / Hippel module
// decoder.
//
// A Decoder is an opaque, stateful handle. It parses a module from memory,
// renders 16-bit PCM for one sub-song at a time and must be closed exactly
// once when the caller is done with it.
package decoder

// Decoder renders tracker modules to PCM.
type Decoder interface {
	// Init parses a module from data and selects sub-song song. It reports
	// whether a supported module was found. The decoder keeps its own copy
	// of whatever it needs from data.
	Init(data []byte, song int) bool
	// Reinit selects another sub-song of the already parsed module.
	Reinit(song int) bool

	// Songs is the number of sub-songs in the module.
	Songs() int
	// Duration of the current sub-song in milliseconds.
	Duration() uint32
	// FormatID is a short identifier of the detected format, e.g. "FC14".
	FormatID() string
	// FormatName is the human readable name of the detected format.
	FormatName() string

	// EndShorts makes the decoder end sub-songs shorter than secs seconds
	// when enabled.
	EndShorts(enabled bool, secs int)
	// MixerInit configures the PCM output. zero selects the sample value
	// used for silence and panning is a stereo separation percentage.
	MixerInit(rate, bits, channels, zero, panning int)

	// Fill renders len(buf) bytes of PCM into buf.
	Fill(buf []byte)
	// SongEnd reports whether the current sub-song finished.
	SongEnd() bool
	// Seek moves playback to ms milliseconds from the start.
	Seek(ms int64)

	// Close releases the decoder.
	Close() error
}

// Factory creates decoder instances.
type Factory func() (Decoder, error)
