// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/fcdec/audio"
	"github.com/ik5/fcdec/internal/audiotest"
)

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone

	resampler := audio.NewResampler(source, 16000)

	pcm, err := audio.CollectPCM16(resampler, 4096, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Total samples read: %d\n", len(pcm))
	// Output:
	// Output sample rate: 16000 Hz
	// Total samples read: 16000
}

// Example_pcm16Pipeline converts raw stereo PCM bytes to mono.
func Example_pcm16Pipeline() {
	raw := new(bytes.Buffer)
	for range 4 {
		binary.Write(raw, binary.LittleEndian, []int16{1000, 3000})
	}

	src, err := audio.NewPCM16Source(raw, 44100, 2, 0)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	pcm, _ := audio.CollectPCM16(audio.NewMonoMixer(src), 64, 0)
	fmt.Println(pcm)
	// Output:
	// [2000 2000 2000 2000]
}
