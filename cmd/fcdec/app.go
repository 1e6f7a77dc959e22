// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ik5/fcdec"
	"github.com/ik5/fcdec/decoder"
	"github.com/ik5/fcdec/host"
	"github.com/ik5/fcdec/host/memhost"
	"github.com/ik5/fcdec/internal/logging"
)

var (
	errUsage       = errors.New("invalid usage")
	errNoPlugin    = errors.New("no plugin for file")
	errNoSuchTrack = errors.New("no such track")

	errNoAudioOutput = errors.New("built without audio output (headless)")
)

// environment is what the commands need from the outside world.
type environment struct {
	fs         afero.Fs
	newDecoder decoder.Factory
	logger     *zap.SugaredLogger
	stdout     io.Writer
	stderr     io.Writer
}

// commonFlags are accepted by every command.
type commonFlags struct {
	config          string
	sampleRateIndex int
	panning         int
	minDuration     int
	verbose         bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", "", "YAML settings file")
	fs.IntVar(&c.sampleRateIndex, "samplerate-index", fcdec.DefaultSampleRateIndex,
		"output rate: 0=48000, 1=44100, 2=22050")
	fs.IntVar(&c.panning, "panning", fcdec.DefaultPanning, "stereo panning (0..100)")
	fs.IntVar(&c.minDuration, "minduration", fcdec.DefaultMinDuration,
		"skip sub-songs shorter than this many seconds (0 keeps all)")
	fs.BoolVar(&c.verbose, "v", false, "log diagnostics to stderr")
}

// app wires the host, the plugin and the registry together.
type app struct {
	env      environment
	logger   *zap.SugaredLogger
	host     *memhost.Host
	playlist *memhost.Playlist
	plugin   *fcdec.Plugin
	registry *host.Registry
}

func newApp(env environment, flags *flag.FlagSet, common *commonFlags) (*app, error) {
	logger := env.logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
		if common.verbose {
			l, err := logging.NewLogger(buildType, "logs")
			if err != nil {
				return nil, err
			}
			logger = l
		}
	}

	config, err := memhost.LoadConfig(env.fs, common.config)
	if err != nil {
		return nil, err
	}

	// Flags given on the command line win over the settings file.
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "samplerate-index":
			config.Set(fcdec.ConfigKeySampleRate, common.sampleRateIndex)
		case "panning":
			config.Set(fcdec.ConfigKeyPanning, common.panning)
		case "minduration":
			config.Set(fcdec.ConfigKeyMinDuration, common.minDuration)
		}
	})

	h := memhost.New(
		memhost.WithFs(env.fs),
		memhost.WithConfig(config),
		memhost.WithLogger(logger),
	)
	plugin := fcdec.New(h, env.newDecoder, fcdec.WithLogger(logger))

	registry := host.NewRegistry()
	registry.RegisterPlugin(plugin)

	if err := plugin.Start(); err != nil {
		return nil, fmt.Errorf("start plugin: %w", err)
	}

	return &app{
		env:      env,
		logger:   logger.Named("cli"),
		host:     h,
		playlist: memhost.NewPlaylist(h),
		plugin:   plugin,
		registry: registry,
	}, nil
}

func (a *app) close() {
	if err := a.plugin.Stop(); err != nil {
		a.logger.Warnw("Failed to stop plugin", "error", err)
	}
	_ = a.logger.Sync()
}

// pluginFor returns the plugin registered for the extension of path.
func (a *app) pluginFor(path string) (host.DecoderPlugin, error) {
	p, ok := a.registry.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errNoPlugin)
	}
	return p, nil
}

// openTrack returns an initialised stream for the 1-based track of path.
func (a *app) openTrack(path string, track int) (host.Stream, error) {
	if track < 1 {
		return nil, fmt.Errorf("track %d: %w", track, errNoSuchTrack)
	}

	p, err := a.pluginFor(path)
	if err != nil {
		return nil, err
	}

	it := a.playlist.AllocItem(path, p.Info().ID)
	defer a.playlist.UnrefItem(it)
	a.host.SetMetaInt(it, host.MetaTrackNum, track-1)

	st := p.Open(0)
	if err := st.Init(it); err != nil {
		return nil, err
	}

	a.logger.Debugw("Opened track", "path", path, "track", track, "format", st.Format())
	return st, nil
}
