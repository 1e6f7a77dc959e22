//go:build headless

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"testing"

	"github.com/ik5/fcdec/internal/decodertest"
)

func TestPlay_Headless(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, decodertest.Song{DurationMS: 20000, FormatID: "FC14", Bytes: 8192})

	err := dispatch(env.environment, []string{"play", "-track", "1", "/music/a.fc"})
	if !errors.Is(err, errNoAudioOutput) {
		t.Fatalf("play error = %v, want %v", err, errNoAudioOutput)
	}

	fake := env.factory.Last()
	if fake == nil {
		t.Fatal("play did not open the track")
	}
	if fake.Closed != 1 {
		t.Errorf("decoder closed %d times, want 1", fake.Closed)
	}
}
