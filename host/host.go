// SPDX-License-Identifier: EPL-2.0

package host

import "io"

// Well known metadata keys.
const (
	MetaURI      = ":URI"
	MetaTrackNum = ":TRACKNUM"
	MetaFileType = ":FILETYPE"
	MetaTrack    = "track"
)

// File is an open host file.
type File interface {
	io.Reader
	io.Closer

	// Len reports the file size in bytes.
	Len() (int64, error)
}

// Files opens files by URI or path.
type Files interface {
	Open(uri string) (File, error)
}

// Metadata gives access to the host-wide playlist metadata store.
//
// Individual accessors are safe for concurrent use. Lock and Unlock hold
// the host-wide playlist lock so that a caller can copy values without the
// host or another session changing them in between.
type Metadata interface {
	Lock()
	Unlock()

	FindMeta(it *Item, key string) string
	FindMetaInt(it *Item, key string, def int) int
	ItemDuration(it *Item) float64

	SetMetaInt(it *Item, key string, value int)
	AddMeta(it *Item, key, value string)
}

// Config reads persisted settings owned by the host.
type Config interface {
	// GetInt returns the value stored under key, or def when there is none.
	GetInt(key string, def int) int
}

// Playlist is a mutable host playlist.
type Playlist interface {
	// AllocItem returns a new item with one reference held by the caller.
	AllocItem(uri, pluginID string) *Item
	SetItemDuration(it *Item, seconds float64)
	// InsertItem places it right after the cursor (at the head when after
	// is nil) and returns it as the new cursor.
	InsertItem(after, it *Item) *Item
	// UnrefItem drops a reference obtained from AllocItem.
	UnrefItem(it *Item)
}

// API is the set of services every plugin receives.
type API interface {
	Files
	Metadata
	Config
}
