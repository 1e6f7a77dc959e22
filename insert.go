// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"strconv"

	"github.com/ik5/fcdec/host"
)

// Insert lists the sub-songs of path in pl, right after the cursor.
//
// Every sub-song at least as long as the configured minimum duration
// becomes one item carrying ":TRACKNUM" (0-based), "track" (1-based), the
// duration and ":FILETYPE". The last inserted item is returned; when the
// file cannot be read or holds no recognised module, after is returned and
// pl is left untouched.
func (p *Plugin) Insert(pl host.Playlist, after *host.Item, path string) *host.Item {
	data, err := p.loadFile(path)
	if err != nil {
		p.logger.Debugw("Skipping unreadable file", "path", path, "error", err)
		return after
	}

	dec, err := p.newDecoderInstance()
	if err != nil {
		p.logger.Debugw("Failed to create decoder", "path", path, "error", err)
		return after
	}
	defer dec.Close()

	if !dec.Init(data, 0) {
		p.logger.Debugw("Module not recognised", "path", path)
		return after
	}

	minDuration := p.minDuration()
	songs := dec.Songs()
	inserted := 0

	for s := range songs {
		it := pl.AllocItem(path, PluginID)
		p.api.SetMetaInt(it, host.MetaTrackNum, s)
		p.api.AddMeta(it, host.MetaTrack, strconv.Itoa(s+1))

		if dec.Reinit(s) {
			dur := int(dec.Duration() / 1000)
			pl.SetItemDuration(it, float64(dur))
			p.api.AddMeta(it, host.MetaFileType, dec.FormatID())

			if dur >= minDuration {
				after = pl.InsertItem(after, it)
				inserted++
			}
		}
		pl.UnrefItem(it)
	}

	p.logger.Debugw("Probed module", "path", path, "songs", songs, "inserted", inserted)
	return after
}
