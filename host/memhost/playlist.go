// SPDX-License-Identifier: EPL-2.0

package memhost

import (
	"slices"
	"sync"

	"github.com/ik5/fcdec/host"
)

// Playlist is an ordered, in-memory host.Playlist.
type Playlist struct {
	host  *Host
	mtx   sync.Mutex
	items []*host.Item
}

// NewPlaylist returns an empty playlist whose item metadata is managed by h.
func NewPlaylist(h *Host) *Playlist {
	return &Playlist{host: h}
}

// AllocItem returns a new item holding one reference for the caller.
func (p *Playlist) AllocItem(uri, pluginID string) *host.Item {
	return host.NewItem(uri, pluginID)
}

// SetItemDuration stores the duration in seconds of it.
func (p *Playlist) SetItemDuration(it *host.Item, seconds float64) {
	p.host.SetItemDuration(it, seconds)
}

// InsertItem places it right after after, at the head when after is nil
// and at the end when after is not in the playlist. The playlist takes its
// own reference to it.
func (p *Playlist) InsertItem(after, it *host.Item) *host.Item {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	idx := 0
	if after != nil {
		if i := slices.Index(p.items, after); i >= 0 {
			idx = i + 1
		} else {
			idx = len(p.items)
		}
	}
	p.items = slices.Insert(p.items, idx, it)
	it.Refs++

	p.host.logger.Debugw("Inserted playlist item", "id", it.ID, "uri", it.URI, "position", idx)
	return it
}

// UnrefItem drops one reference to it.
func (p *Playlist) UnrefItem(it *host.Item) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if it.Refs > 0 {
		it.Refs--
	}
}

// Items returns a snapshot of the playlist in order.
func (p *Playlist) Items() []*host.Item {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return slices.Clone(p.items)
}

// Len is the number of items.
func (p *Playlist) Len() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return len(p.items)
}
