// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/fcdec/utils"
)

// CollectPCM16 drains src and returns its samples as 16-bit PCM.
//
// Parameters:
//   - src: The audio source to drain
//   - bufferSize: Size of the read buffer in samples (e.g., 4096)
//   - limit: Maximum number of samples to collect; 0 collects until io.EOF
//
// The returned slice keeps the interleaving of src. Reaching the limit is
// not an error.
func CollectPCM16(src Source, bufferSize int, limit int) ([]int16, error) {
	channels := src.Channels()
	if bufferSize < channels {
		bufferSize = channels
	}
	// Keep reads frame aligned so the resampler accepts them.
	bufferSize -= bufferSize % channels
	if limit > 0 {
		limit -= limit % channels
	}

	estimated := src.SampleRate() * channels * 2
	if limit > 0 && limit < estimated {
		estimated = limit
	}
	pcm16 := make([]int16, 0, estimated)
	buf := make([]float32, bufferSize)

	for limit == 0 || len(pcm16) < limit {
		want := buf
		if limit > 0 && limit-len(pcm16) < len(want) {
			want = want[:limit-len(pcm16)]
		}

		n, err := src.ReadSamples(want)
		if n > 0 {
			for _, x := range want[:n] {
				pcm16 = append(pcm16, utils.Float32ToInt16(x))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return pcm16, fmt.Errorf("collect: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm16, nil
}
