// SPDX-License-Identifier: EPL-2.0

package host

import "io"

// Hints are passed by the host to Open. Decoders may ignore them.
type Hints uint32

// PluginInfo is the static description of a plugin.
type PluginInfo struct {
	ID           string
	Name         string
	Description  string
	Copyright    string
	Website      string
	VersionMajor int
	VersionMinor int
	// ConfigDialog is the settings schema the host renders for the user.
	ConfigDialog string
	Extensions   []string
}

// Stream is a decoding session created by DecoderPlugin.Open.
//
// The host serializes calls on a stream. Read, SeekTime and Free are only
// valid after a successful Init.
type Stream interface {
	// Init binds the stream to the track described by it.
	Init(it *Item) error
	Format() Format
	// Position is the playback position in seconds.
	Position() float64
	// Read fills p with PCM. It returns 0, io.EOF once the track ended.
	io.Reader
	SeekTime(seconds float64) error
	Free()
}

// DecoderPlugin is implemented by every decoder the host can load.
type DecoderPlugin interface {
	Info() PluginInfo
	Start() error
	Stop() error
	Open(hints Hints) Stream
	// Insert probes path and adds its tracks to pl after the cursor. It
	// returns the last inserted item, or after when nothing was added.
	Insert(pl Playlist, after *Item, path string) *Item
}
