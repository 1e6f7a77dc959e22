// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/fcdec/decoder"
	"github.com/ik5/fcdec/host"
)

const (
	// PluginID identifies the plugin and the playlist items it creates.
	PluginID = "fcdec"

	bitsPerSample = 16
	channels      = 2
)

// Extensions are the file name extensions handled by the plugin.
var Extensions = []string{"fc", "fc13", "fc14", "fc3", "fc4", "smod", "hip", "hipc", "hip7", "mcmd"}

// Plugin is the decoder plugin. It is safe for concurrent use; the sessions
// it opens are not.
type Plugin struct {
	api        host.API
	newDecoder decoder.Factory
	logger     *zap.SugaredLogger
}

var _ host.DecoderPlugin = (*Plugin)(nil)

// Option configures a Plugin.
type Option func(*Plugin)

// WithLogger sets the logger used for diagnostics. The default discards
// everything.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(p *Plugin) { p.logger = logger }
}

// New returns a plugin that uses api for host services and newDecoder to
// create decoder instances.
func New(api host.API, newDecoder decoder.Factory, opts ...Option) *Plugin {
	p := &Plugin{
		api:        api,
		newDecoder: newDecoder,
		logger:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.Named(PluginID)

	return p
}

// Info describes the plugin to the host.
func (p *Plugin) Info() host.PluginInfo {
	return host.PluginInfo{
		ID:           PluginID,
		Name:         "FC & Hippel player",
		VersionMajor: 0,
		VersionMinor: 1,
		Description: "Future Composer (AMIGA) player\n" +
			"TFMX/Hippel (AMIGA) player\n\n" +
			"File name extensions:\n" +
			".fc, .fc13, .fc14, .fc3, .fc4, .smod\n" +
			".hip, .hipc, .hip7, .mcmd\n",
		Copyright:    "Created by Michael Schwendt\n\nLicense: GPLv2 or later\n",
		Website:      "https://github.com/mschwendt/deadbeef-plugins-fc",
		ConfigDialog: configDialog,
		Extensions:   append([]string(nil), Extensions...),
	}
}

// Start and Stop are lifecycle hooks; the plugin holds no global state.
func (p *Plugin) Start() error { return nil }
func (p *Plugin) Stop() error  { return nil }

// Open returns a new, uninitialised session.
func (p *Plugin) Open(hints host.Hints) host.Stream {
	return &Session{plugin: p}
}

// newDecoderInstance wraps the factory so that a nil decoder counts as a
// failure.
func (p *Plugin) newDecoderInstance() (decoder.Decoder, error) {
	dec, err := p.newDecoder()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoDecoder, err)
	}
	if dec == nil {
		return nil, ErrNoDecoder
	}
	return dec, nil
}
