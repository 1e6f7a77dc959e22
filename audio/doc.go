// SPDX-License-Identifier: EPL-2.0

// Package audio holds the float32 PCM stages applied to decoder output.
//
// Every stage is a Source, so stages chain:
//
//	src, _ := audio.NewPCM16Source(stream, 44100, 2, 0)
//	res := audio.NewResampler(src, 22050)
//	mono := audio.NewMonoMixer(res)
//	pcm, err := audio.CollectPCM16(mono, 4096, 0)
//
// PCM16Source turns a little-endian int16 byte stream (a playing session)
// into samples. Resampler converts the rate with cubic interpolation and
// low-pass filters when it downsamples. MonoMixer averages the channels of
// each frame. CollectPCM16 drains a chain back into int16.
//
// Samples are float32 in [-1, 1). Conversion to and from int16 goes through
// the utils package and is lossless.
//
// A Source reports the end of its data with io.EOF, possibly together with
// the last samples:
//
//	for {
//		n, err := src.ReadSamples(buf)
//		consume(buf[:n])
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			return err
//		}
//	}
package audio
