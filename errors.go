// SPDX-License-Identifier: EPL-2.0

package fcdec

import "errors"

var (
	// ErrNoDecoder is returned by Init when a decoder instance could not be
	// created.
	ErrNoDecoder = errors.New("decoder instance unavailable")

	// ErrUnknownModule is returned by Init when the decoder does not
	// recognise the file.
	ErrUnknownModule = errors.New("not a Future Composer or Hippel module")

	// ErrNotInitialized is returned when a session is used before a
	// successful Init or after Free.
	ErrNotInitialized = errors.New("session not initialized")

	// ErrAlreadyInitialized is returned by a second Init on a live session.
	ErrAlreadyInitialized = errors.New("session already initialized")
)
