// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"

	"github.com/ik5/fcdec"
	"github.com/ik5/fcdec/formats/wav"
	"github.com/ik5/fcdec/host"
)

func dispatch(env environment, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(env.stderr, usage)
		return errUsage
	}

	switch args[0] {
	case "list":
		return listCmd(env, args[1:])
	case "render":
		return renderCmd(env, args[1:])
	case "play":
		return playCmd(env, args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(env.stdout, usage)
		return nil
	default:
		fmt.Fprint(env.stderr, usage)
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func newFlagSet(env environment, name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	common := &commonFlags{}
	common.register(fs)
	return fs, common
}

func listCmd(env environment, args []string) error {
	fs, common := newFlagSet(env, "list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("list: no files given: %w", errUsage)
	}

	a, err := newApp(env, fs, common)
	if err != nil {
		return err
	}
	defer a.close()

	var cursor *host.Item
	for _, path := range fs.Args() {
		p, err := a.pluginFor(path)
		if err != nil {
			fmt.Fprintf(env.stderr, "skipping %v\n", err)
			continue
		}
		before := a.playlist.Len()
		cursor = p.Insert(a.playlist, cursor, path)
		a.logger.Debugw("Probed file", "path", path, "added", a.playlist.Len()-before)
	}

	for _, it := range a.playlist.Items() {
		fmt.Fprintf(env.stdout, "%s\ttrack %s\t%s\t%s\n",
			it.URI,
			a.host.FindMeta(it, host.MetaTrack),
			formatDuration(a.host.ItemDuration(it)),
			a.host.FindMeta(it, host.MetaFileType),
		)
	}
	return nil
}

func formatDuration(seconds float64) string {
	if seconds < 0 {
		return "?:??"
	}
	s := int(seconds)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

func renderCmd(env environment, args []string) error {
	fs, common := newFlagSet(env, "render")
	track := fs.Int("track", 1, "track number (1-based)")
	rate := fs.Int("rate", 0, "output sample rate in Hz (0 keeps the decoder rate)")
	mono := fs.Bool("mono", false, "fold to a single channel")
	maxDur := fs.Duration("max", 0, "stop after this much audio (e.g. 90s)")
	out := fs.String("o", "", "output WAV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *out == "" {
		return fmt.Errorf("render: need -o and exactly one file: %w", errUsage)
	}

	a, err := newApp(env, fs, common)
	if err != nil {
		return err
	}
	defer a.close()

	st, err := a.openTrack(fs.Arg(0), *track)
	if err != nil {
		return err
	}
	defer st.Free()

	samples, outRate, outChannels, err := fcdec.Render(st, fcdec.RenderOptions{
		SampleRate:  *rate,
		Mono:        *mono,
		MaxDuration: *maxDur,
	})
	if err != nil {
		return err
	}

	f, err := env.fs.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if err := wav.WriteWAV16(f, outRate, outChannels, samples); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *out, err)
	}

	a.logger.Infow("Rendered track", "output", *out, "samples", len(samples),
		"sampleRate", outRate, "channels", outChannels)
	fmt.Fprintf(env.stdout, "%s: %d frames at %d Hz, %d channel(s)\n",
		*out, len(samples)/outChannels, outRate, outChannels)
	return nil
}

func playCmd(env environment, args []string) error {
	fs, common := newFlagSet(env, "play")
	track := fs.Int("track", 1, "track number (1-based)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("play: need exactly one file: %w", errUsage)
	}

	a, err := newApp(env, fs, common)
	if err != nil {
		return err
	}
	defer a.close()

	st, err := a.openTrack(fs.Arg(0), *track)
	if err != nil {
		return err
	}
	defer st.Free()

	a.logger.Infow("Playing", "path", fs.Arg(0), "track", *track, "sampleRate", st.Format().SampleRate)
	return playStream(st)
}
