// SPDX-License-Identifier: EPL-2.0

package host

import (
	"path/filepath"
	"strings"
	"sync"
)

// Registry maps file extensions (e.g., "fc", "hip7") to decoder plugins.
type Registry struct {
	plugins map[string]DecoderPlugin

	mtx *sync.Mutex
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]DecoderPlugin),
		mtx:     &sync.Mutex{},
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Register maps ext to p. The leading dot and case of ext are ignored.
func (r *Registry) Register(ext string, p DecoderPlugin) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.plugins[normalizeExt(ext)] = p
}

// RegisterPlugin registers p for every extension it declares.
func (r *Registry) RegisterPlugin(p DecoderPlugin) {
	for _, ext := range p.Info().Extensions {
		r.Register(ext, p)
	}
}

// Get returns the plugin registered for ext.
func (r *Registry) Get(ext string) (DecoderPlugin, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.plugins[normalizeExt(ext)]
	return p, ok
}

// ForPath looks up the plugin registered for the extension of path.
func (r *Registry) ForPath(path string) (DecoderPlugin, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, false
	}
	return r.Get(ext)
}
