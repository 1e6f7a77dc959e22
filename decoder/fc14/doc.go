// SPDX-License-Identifier: EPL-2.0

// Package fc14 binds libfc14audiodecoder, the Future Composer and
// Hippel/TFMX replayer library.
//
// The binding uses cgo and is only compiled with the "fc14" build tag:
//
//	go build -tags fc14 ./...
//
// The library is located through pkg-config (fc14audiodecoder). Without the
// tag, or with cgo disabled, New returns ErrUnavailable.
package fc14
