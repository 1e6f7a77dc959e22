// SPDX-License-Identifier: EPL-2.0

// Package memhost is an in-memory implementation of the host services.
//
// It backs the command line tool and the tests: files come from an
// afero.Fs, settings from a viper instance and the playlist lives in memory.
package memhost

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ik5/fcdec/host"
)

// Host implements host.API.
type Host struct {
	fs     afero.Fs
	config *viper.Viper
	logger *zap.SugaredLogger

	// plMu is the host-wide playlist lock handed out through Lock/Unlock.
	plMu   sync.Mutex
	metaMu sync.RWMutex
}

// Option configures a Host.
type Option func(*Host)

// WithFs makes the host read files from fs.
func WithFs(fs afero.Fs) Option {
	return func(h *Host) { h.fs = fs }
}

// WithConfig makes the host answer config lookups from v.
func WithConfig(v *viper.Viper) Option {
	return func(h *Host) { h.config = v }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(h *Host) { h.logger = logger }
}

// New returns a host reading from the OS file system with an empty config.
func New(opts ...Option) *Host {
	h := &Host{
		fs:     afero.NewOsFs(),
		config: viper.New(),
		logger: zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.Named("host")

	return h
}

// Settings exposes the viper instance behind Config so callers can
// override values at runtime.
func (h *Host) Settings() *viper.Viper { return h.config }

type file struct {
	afero.File
}

func (f file) Len() (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", f.Name(), err)
	}
	return info.Size(), nil
}

// Open opens uri. A "file://" scheme is accepted and stripped.
func (h *Host) Open(uri string) (host.File, error) {
	path := strings.TrimPrefix(uri, "file://")
	f, err := h.fs.Open(path)
	if err != nil {
		h.logger.Debugw("Failed to open file", "path", path, "error", err)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return file{f}, nil
}

// GetInt returns the integer stored under key, or def when key is unset.
func (h *Host) GetInt(key string, def int) int {
	if !h.config.IsSet(key) {
		return def
	}
	return h.config.GetInt(key)
}

// Lock and Unlock guard the playlist for callers reading item metadata.
func (h *Host) Lock()   { h.plMu.Lock() }
func (h *Host) Unlock() { h.plMu.Unlock() }

// FindMeta returns the metadata value of key, or "" when absent.
func (h *Host) FindMeta(it *host.Item, key string) string {
	h.metaMu.RLock()
	defer h.metaMu.RUnlock()

	return it.Meta[key]
}

// FindMetaInt parses the metadata value of key, returning def when it is
// absent or not a number.
func (h *Host) FindMetaInt(it *host.Item, key string, def int) int {
	h.metaMu.RLock()
	defer h.metaMu.RUnlock()

	v, ok := it.Meta[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// ItemDuration is the duration of it in seconds, negative when unknown.
func (h *Host) ItemDuration(it *host.Item) float64 {
	h.metaMu.RLock()
	defer h.metaMu.RUnlock()

	return it.Duration
}

// SetMetaInt stores value under key in decimal.
func (h *Host) SetMetaInt(it *host.Item, key string, value int) {
	h.AddMeta(it, key, strconv.Itoa(value))
}

// AddMeta stores value under key, replacing any previous value.
func (h *Host) AddMeta(it *host.Item, key, value string) {
	h.metaMu.Lock()
	defer h.metaMu.Unlock()

	if it.Meta == nil {
		it.Meta = make(map[string]string)
	}
	it.Meta[key] = value
}

// SetItemDuration stores the duration in seconds of it.
func (h *Host) SetItemDuration(it *host.Item, seconds float64) {
	h.metaMu.Lock()
	defer h.metaMu.Unlock()

	it.Duration = seconds
}
