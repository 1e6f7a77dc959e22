// SPDX-License-Identifier: EPL-2.0

package memhost

import (
	"testing"

	"github.com/spf13/afero"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	yaml := "fcdec:\n  samplerate: 0\n  panning: 30\n"
	if err := afero.WriteFile(fs, "/etc/fcdec.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	v, err := LoadConfig(fs, "/etc/fcdec.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	h := New(WithConfig(v))
	if got := h.GetInt("fcdec.samplerate", 1); got != 0 {
		t.Errorf("samplerate = %d, want 0", got)
	}
	if got := h.GetInt("fcdec.panning", 75); got != 30 {
		t.Errorf("panning = %d, want 30", got)
	}
	if got := h.GetInt("fcdec.minduration", 10); got != 10 {
		t.Errorf("minduration = %d, want default 10", got)
	}
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Parallel()

	v, err := LoadConfig(afero.NewMemMapFs(), "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if len(v.AllKeys()) != 0 {
		t.Errorf("AllKeys() = %v, want none", v.AllKeys())
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(afero.NewMemMapFs(), "/nope.yaml"); err == nil {
		t.Error("LoadConfig(missing) error = nil")
	}
}
