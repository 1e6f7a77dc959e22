// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/ik5/fcdec/host"
	"github.com/ik5/fcdec/host/memhost"
	"github.com/ik5/fcdec/internal/decodertest"
)

var testMagic = []byte("FC14")

func moduleBytes() []byte {
	return append(append([]byte(nil), testMagic...), 0x00, 0x01, 0x02, 0x03)
}

func songsWithDurations(seconds ...uint32) []decodertest.Song {
	songs := make([]decodertest.Song, len(seconds))
	for i, s := range seconds {
		songs[i] = decodertest.Song{DurationMS: s * 1000, FormatID: "FC14"}
	}
	return songs
}

type fixture struct {
	fs      afero.Fs
	config  *viper.Viper
	host    *memhost.Host
	factory *decodertest.Factory
	plugin  *Plugin
}

func newFixture(t *testing.T, songs []decodertest.Song) *fixture {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "song.fc", moduleBytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := afero.WriteFile(fs, "garbage.fc", []byte("not a module"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	config := viper.New()
	h := memhost.New(memhost.WithFs(fs), memhost.WithConfig(config))
	factory := &decodertest.Factory{Module: decodertest.Module{Magic: testMagic, Songs: songs}}

	return &fixture{
		fs:      fs,
		config:  config,
		host:    h,
		factory: factory,
		plugin:  New(h, factory.New),
	}
}

// item returns a playlist item for uri playing the given sub-song.
func (f *fixture) item(uri string, subsong int) *host.Item {
	it := host.NewItem(uri, PluginID)
	f.host.SetMetaInt(it, host.MetaTrackNum, subsong)
	return it
}

func (f *fixture) session(t *testing.T, it *host.Item) *Session {
	t.Helper()

	s, ok := f.plugin.Open(0).(*Session)
	if !ok {
		t.Fatal("Open() did not return a *Session")
	}
	if err := s.Init(it); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(s.Free)
	return s
}

func assertClosedOnce(t *testing.T, factory *decodertest.Factory) {
	t.Helper()

	for i, fake := range factory.Created() {
		if fake.Closed != 1 {
			t.Errorf("decoder %d closed %d times, want 1", i, fake.Closed)
		}
	}
}

// overstatedFile claims to be longer than its content.
type overstatedFile struct {
	host.File
	size int64
}

func (f overstatedFile) Len() (int64, error) { return f.size, nil }

// shortReadHost serves files whose reported length exceeds what can be
// read from them, so reading them whole fails.
type shortReadHost struct {
	*memhost.Host
}

func (h shortReadHost) Open(uri string) (host.File, error) {
	f, err := h.Host.Open(uri)
	if err != nil {
		return nil, err
	}
	return overstatedFile{File: f, size: 1 << 20}, nil
}

// shortReadPlugin is a plugin over f's files whose reads come up short.
func (f *fixture) shortReadPlugin() *Plugin {
	return New(shortReadHost{Host: f.host}, f.factory.New)
}
