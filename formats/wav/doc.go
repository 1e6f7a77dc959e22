// SPDX-License-Identifier: EPL-2.0

// Package wav writes rendered PCM to WAV files.
//
// It uses the github.com/go-audio library for the container handling.
//
//	out, _ := os.Create("song.wav")
//	defer out.Close()
//
//	// samples are interleaved stereo int16
//	err := wav.WriteWAV16(out, 44100, 2, samples)
//
// Chunk sizes in the RIFF header are patched when the writer finishes, so
// the destination has to implement io.WriteSeeker.
package wav
