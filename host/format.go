// SPDX-License-Identifier: EPL-2.0

package host

// ChannelMask is a bit set of speaker positions.
type ChannelMask uint32

const (
	SpeakerFrontLeft  ChannelMask = 1 << 0
	SpeakerFrontRight ChannelMask = 1 << 1
)

// MaskForChannels returns the speaker layout used for a channel count.
func MaskForChannels(channels int) ChannelMask {
	if channels == 1 {
		return SpeakerFrontLeft
	}
	return SpeakerFrontLeft | SpeakerFrontRight
}

// Format describes the interleaved PCM a stream produces.
type Format struct {
	BitsPerSample int
	Channels      int
	SampleRate    int
	ChannelMask   ChannelMask
}

// FrameSize is the number of bytes holding one sample for every channel.
func (f Format) FrameSize() int {
	return (f.BitsPerSample >> 3) * f.Channels
}
