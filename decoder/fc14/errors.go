// SPDX-License-Identifier: EPL-2.0

package fc14

import "errors"

var (
	// ErrUnavailable is returned by New when the binary was built without
	// the decoder library.
	ErrUnavailable = errors.New("fc14 decoder library not available")

	// ErrAllocation is returned by New when the library cannot create a
	// decoder instance.
	ErrAllocation = errors.New("fc14 decoder allocation failed")
)
