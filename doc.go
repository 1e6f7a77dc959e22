// SPDX-License-Identifier: EPL-2.0

// Package fcdec is a decoder plugin for Future Composer and Hippel/TFMX
// Amiga modules.
//
// All decoding is delegated to a decoder.Decoder (normally the
// libfc14audiodecoder binding in decoder/fc14). The plugin adapts that
// decoder to the host contract in the host package: it opens files through
// the host, reads its settings from the host configuration, produces 16-bit
// stereo PCM on demand and lists the sub-songs of a file in a playlist.
//
// # Quick Start
//
//	h := memhost.New()
//	plugin := fcdec.New(h, fc14.New)
//
//	pl := memhost.NewPlaylist(h)
//	plugin.Insert(pl, nil, "chambers of shaolin.fc")
//
//	stream := plugin.Open(0)
//	if err := stream.Init(pl.Items()[0]); err != nil {
//	    // not playable
//	}
//	defer stream.Free()
//
//	buf := make([]byte, 4096)
//	for {
//	    n, err := stream.Read(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    // buf[:n] is interleaved little-endian int16 stereo
//	}
//
// # Settings
//
// Three integer settings are read from the host configuration:
//   - fcdec.samplerate: index into {48000, 44100, 22050} (default 1)
//   - fcdec.panning: stereo separation in percent, 0-100 (default 75)
//   - fcdec.minduration: sub-songs shorter than this many seconds are not
//     listed and end early during playback; 0 disables (default 10)
//
// # Rendering
//
// Render pulls an initialised stream through the audio package pipeline
// (optional resampling and mono mixdown) and returns 16-bit samples, ready
// for formats/wav.
package fcdec
