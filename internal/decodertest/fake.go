// SPDX-License-Identifier: EPL-2.0

// Package decodertest provides a scriptable decoder.Decoder for tests.
package decodertest

import (
	"errors"
	"sync"

	"github.com/ik5/fcdec/decoder"
)

// ErrNew is returned by a Factory configured to fail.
var ErrNew = errors.New("decodertest: constructor failure")

// Song describes one sub-song of a fake module.
type Song struct {
	DurationMS uint32
	FormatID   string
	// Bytes is how many PCM bytes the song renders before it ends.
	// Zero means the song never ends.
	Bytes int
	// BadReinit makes Reinit fail for this song.
	BadReinit bool
}

// Module is the content a fake decoder "recognises".
type Module struct {
	Magic []byte
	Songs []Song
}

// MixerConfig records the arguments of the last MixerInit call.
type MixerConfig struct {
	Rate, Bits, Channels, Zero, Panning int
}

// Fake is a decoder that plays back a scripted Module. Every call is
// recorded so tests can assert on how the decoder was driven.
type Fake struct {
	module Module

	InitData   []byte
	InitSong   int
	Recognised bool

	Song        int
	Rendered    int
	Mixer       MixerConfig
	MixerCalls  int
	EndShortsOn bool
	ShortSecs   int
	Seeks       []int64
	Closed      int
}

var _ decoder.Decoder = (*Fake)(nil)

// New returns a fake decoder for module.
func New(module Module) *Fake {
	return &Fake{module: module, Song: -1}
}

func (f *Fake) Init(data []byte, song int) bool {
	f.InitData = append([]byte(nil), data...)
	f.InitSong = song
	f.Recognised = len(data) >= len(f.module.Magic) && string(data[:len(f.module.Magic)]) == string(f.module.Magic)
	if !f.Recognised {
		return false
	}
	return f.Reinit(song)
}

func (f *Fake) Reinit(song int) bool {
	if !f.Recognised || song < 0 || song >= len(f.module.Songs) {
		return false
	}
	if f.module.Songs[song].BadReinit {
		return false
	}
	f.Song = song
	f.Rendered = 0
	return true
}

func (f *Fake) current() (Song, bool) {
	if f.Song < 0 || f.Song >= len(f.module.Songs) {
		return Song{}, false
	}
	return f.module.Songs[f.Song], true
}

func (f *Fake) Songs() int {
	if !f.Recognised {
		return 0
	}
	return len(f.module.Songs)
}

func (f *Fake) Duration() uint32 {
	s, _ := f.current()
	return s.DurationMS
}

func (f *Fake) FormatID() string {
	s, _ := f.current()
	return s.FormatID
}

func (f *Fake) FormatName() string {
	return "Fake " + f.FormatID()
}

func (f *Fake) EndShorts(enabled bool, secs int) {
	f.EndShortsOn = enabled
	f.ShortSecs = secs
}

func (f *Fake) MixerInit(rate, bits, channels, zero, panning int) {
	f.Mixer = MixerConfig{Rate: rate, Bits: bits, Channels: channels, Zero: zero, Panning: panning}
	f.MixerCalls++
}

// Fill writes a ramp of little-endian int16 samples: the n-th sample
// rendered since Reinit holds int16(n).
func (f *Fake) Fill(buf []byte) {
	for i := 0; i+1 < len(buf); i += 2 {
		v := uint16(int16((f.Rendered + i) / 2))
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
	}
	f.Rendered += len(buf)
}

func (f *Fake) SongEnd() bool {
	s, ok := f.current()
	if !ok {
		return true
	}
	return s.Bytes > 0 && f.Rendered >= s.Bytes
}

func (f *Fake) Seek(ms int64) {
	f.Seeks = append(f.Seeks, ms)
}

func (f *Fake) Close() error {
	f.Closed++
	return nil
}

// Factory hands out fakes and remembers each of them.
type Factory struct {
	Module Module
	Fail   bool

	mtx     sync.Mutex
	created []*Fake
}

// New is a decoder.Factory.
func (fa *Factory) New() (decoder.Decoder, error) {
	if fa.Fail {
		return nil, ErrNew
	}
	f := New(fa.Module)

	fa.mtx.Lock()
	defer fa.mtx.Unlock()
	fa.created = append(fa.created, f)

	return f, nil
}

// Created returns every fake built so far.
func (fa *Factory) Created() []*Fake {
	fa.mtx.Lock()
	defer fa.mtx.Unlock()

	return append([]*Fake(nil), fa.created...)
}

// Last returns the most recently created fake, or nil.
func (fa *Factory) Last() *Fake {
	created := fa.Created()
	if len(created) == 0 {
		return nil
	}
	return created[len(created)-1]
}
