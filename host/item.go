// SPDX-License-Identifier: EPL-2.0

package host

import (
	"github.com/google/uuid"
)

// Item is a playlist entry. Its fields belong to the host; plugins go
// through Metadata and Playlist instead of touching them directly.
type Item struct {
	ID       uuid.UUID
	URI      string
	PluginID string
	Meta     map[string]string
	Duration float64
	Refs     int
}

// NewItem returns an item with a fresh id, its URI recorded under MetaURI
// and a single reference.
func NewItem(uri, pluginID string) *Item {
	return &Item{
		ID:       uuid.New(),
		URI:      uri,
		PluginID: pluginID,
		Meta:     map[string]string{MetaURI: uri},
		Duration: -1,
		Refs:     1,
	}
}
