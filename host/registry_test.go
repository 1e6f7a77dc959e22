// SPDX-License-Identifier: EPL-2.0

package host

import (
	"sync"
	"testing"
)

// stubPlugin is a minimal DecoderPlugin.
type stubPlugin struct {
	id   string
	exts []string
}

func (s *stubPlugin) Info() PluginInfo { return PluginInfo{ID: s.id, Extensions: s.exts} }
func (s *stubPlugin) Start() error     { return nil }
func (s *stubPlugin) Stop() error      { return nil }
func (s *stubPlugin) Open(Hints) Stream {
	return nil
}
func (s *stubPlugin) Insert(_ Playlist, after *Item, _ string) *Item { return after }

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	p := &stubPlugin{id: "fcdec"}

	registry.Register("fc", p)

	got, ok := registry.Get("fc")
	if !ok {
		t.Fatal("Get() failed to retrieve registered plugin")
	}
	if got != p {
		t.Error("Get() returned a different plugin instance")
	}
}

func TestRegistry_Normalisation(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	p := &stubPlugin{id: "fcdec"}
	registry.Register(".HIP7", p)

	for _, ext := range []string{"hip7", "HIP7", ".hip7", ".Hip7"} {
		if _, ok := registry.Get(ext); !ok {
			t.Errorf("Get(%q) found nothing", ext)
		}
	}
}

func TestRegistry_RegisterPlugin(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	fc := &stubPlugin{id: "fcdec", exts: []string{"fc", "smod"}}
	other := &stubPlugin{id: "mod", exts: []string{"mod"}}
	registry.RegisterPlugin(fc)
	registry.RegisterPlugin(other)

	tests := []struct {
		path   string
		want   DecoderPlugin
		wantOK bool
	}{
		{"music/song.fc", fc, true},
		{"SONG.SMOD", fc, true},
		{"a.mod", other, true},
		{"a.xm", nil, false},
		{"noext", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := registry.ForPath(tt.path)
			if ok != tt.wantOK {
				t.Errorf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ForPath(%q) returned the wrong plugin", tt.path)
			}
		})
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register(string(rune('a'+i%26)), &stubPlugin{})
		}()
		go func() {
			defer wg.Done()
			registry.Get("a")
		}()
	}
	wg.Wait()
}
