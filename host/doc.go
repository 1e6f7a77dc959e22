// SPDX-License-Identifier: EPL-2.0

// Package host describes the contract between a music player host and its
// decoder plugins.
//
// A host supplies services to plugins (file access, playlist metadata,
// configuration and playlist mutation) and drives each decoder plugin
// through a fixed lifecycle:
//
//	stream := plugin.Open(hints)
//	if err := stream.Init(item); err != nil {
//	    // skip the track
//	}
//	defer stream.Free()
//
//	buf := make([]byte, 4096)
//	for {
//	    n, err := stream.Read(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    play(buf[:n])
//	}
//
// Plugins also enumerate files into a playlist through Insert, which places
// any discovered items after an insertion cursor and returns the new cursor.
//
// # Metadata Locking
//
// The metadata store is shared by every session and by the host itself.
// Plugins that need a consistent snapshot of an item's metadata hold the
// host-wide lock (Metadata.Lock/Unlock) only while copying the values they
// need, and release it before doing any I/O.
//
// The memhost subpackage provides an in-memory implementation of every
// service interface.
package host
