// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"fmt"
	"io"

	"github.com/ik5/fcdec/decoder"
	"github.com/ik5/fcdec/host"
)

// Session decodes one sub-song of one file.
//
// A session is created by Plugin.Open and becomes usable after Init. It is
// not safe for concurrent use; the host serialises calls on it.
type Session struct {
	plugin *Plugin

	dec      decoder.Decoder
	subsong  int
	duration float64
	readPos  float64
	format   host.Format
}

var _ host.Stream = (*Session)(nil)

// Init loads the file referenced by it and prepares the decoder for its
// sub-song (":TRACKNUM", 1 when absent).
func (s *Session) Init(it *host.Item) error {
	if s.dec != nil {
		return ErrAlreadyInitialized
	}

	p := s.plugin
	dec, err := p.newDecoderInstance()
	if err != nil {
		p.logger.Debugw("Failed to create decoder", "error", err)
		return err
	}

	// Only the URI copy happens under the host lock.
	p.api.Lock()
	uri := p.api.FindMeta(it, host.MetaURI)
	p.api.Unlock()

	f, err := p.api.Open(uri)
	if err != nil {
		dec.Close()
		p.logger.Debugw("Failed to open module", "uri", uri, "error", err)
		return fmt.Errorf("open %s: %w", uri, err)
	}

	cfg := p.settings()
	dec.EndShorts(cfg.MinDuration != 0, cfg.MinDuration)

	subsong := p.api.FindMetaInt(it, host.MetaTrackNum, 1)
	duration := p.api.ItemDuration(it)

	data, err := readWhole(f)
	if err != nil {
		dec.Close()
		p.logger.Debugw("Failed to read module", "uri", uri, "error", err)
		return err
	}

	if !dec.Init(data, subsong) {
		dec.Close()
		p.logger.Debugw("Module not recognised", "uri", uri, "subsong", subsong)
		return fmt.Errorf("%s: %w", uri, ErrUnknownModule)
	}

	dec.MixerInit(cfg.SampleRate, bitsPerSample, channels, 0, cfg.Panning)

	s.dec = dec
	s.subsong = subsong
	s.duration = duration
	s.format = host.Format{
		BitsPerSample: bitsPerSample,
		Channels:      channels,
		SampleRate:    cfg.SampleRate,
		ChannelMask:   host.MaskForChannels(channels),
	}
	s.readPos = 0

	p.logger.Debugw("Session initialised",
		"uri", uri, "subsong", subsong, "sampleRate", cfg.SampleRate, "panning", cfg.Panning)
	return nil
}

// Format is the PCM layout produced by Read.
func (s *Session) Format() host.Format { return s.format }

// Position is the playback position in seconds.
func (s *Session) Position() float64 { return s.readPos }

// Subsong is the sub-song index the session plays.
func (s *Session) Subsong() int { return s.subsong }

// Duration is the track duration recorded in the playlist item, in seconds.
func (s *Session) Duration() float64 { return s.duration }

// Read renders len(p) bytes of PCM into p. Once the song ended it returns
// 0, io.EOF, even though p may have been written to.
func (s *Session) Read(p []byte) (int, error) {
	if s.dec == nil {
		return 0, ErrNotInitialized
	}

	s.dec.Fill(p)
	if s.dec.SongEnd() {
		return 0, io.EOF
	}

	frames := len(p) / s.format.FrameSize()
	s.readPos += float64(frames) / float64(s.format.SampleRate)

	return len(p), nil
}

// SeekTime asks the decoder to continue at seconds and moves the position
// there. The decoder is trusted to comply.
func (s *Session) SeekTime(seconds float64) error {
	if s.dec == nil {
		return ErrNotInitialized
	}

	s.dec.Seek(int64(seconds * 1000))
	s.readPos = seconds

	return nil
}

// Free releases the decoder. It is safe to call more than once.
func (s *Session) Free() {
	if s.dec == nil {
		return
	}
	if err := s.dec.Close(); err != nil {
		s.plugin.logger.Debugw("Failed to release decoder", "error", err)
	}
	s.dec = nil
}
