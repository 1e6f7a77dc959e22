//go:build headless

// SPDX-License-Identifier: EPL-2.0

package main

import "github.com/ik5/fcdec/host"

func playStream(host.Stream) error {
	return errNoAudioOutput
}
