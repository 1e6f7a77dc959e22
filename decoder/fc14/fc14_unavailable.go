//go:build !cgo || !fc14

// SPDX-License-Identifier: EPL-2.0

package fc14

import "github.com/ik5/fcdec/decoder"

// New reports ErrUnavailable; rebuild with -tags fc14 to link the library.
func New() (decoder.Decoder, error) {
	return nil, ErrUnavailable
}
