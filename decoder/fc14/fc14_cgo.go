//go:build cgo && fc14

// SPDX-License-Identifier: EPL-2.0

package fc14

/*
#cgo pkg-config: fc14audiodecoder
#include <stdlib.h>
#include <fc14audiodecoder.h>
*/
import "C"

import (
	"unsafe"

	"github.com/ik5/fcdec/decoder"
)

// Decoder wraps one libfc14audiodecoder instance.
type Decoder struct {
	ptr unsafe.Pointer
}

var _ decoder.Decoder = (*Decoder)(nil)

// New allocates a decoder instance.
func New() (decoder.Decoder, error) {
	ptr := C.fc14dec_new()
	if ptr == nil {
		return nil, ErrAllocation
	}
	return &Decoder{ptr: ptr}, nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func (d *Decoder) Init(data []byte, song int) bool {
	if len(data) == 0 {
		return false
	}
	buf := C.CBytes(data)
	defer C.free(buf)

	return C.fc14dec_init(d.ptr, buf, C.ulong(len(data)), C.int(song)) != 0
}

func (d *Decoder) Reinit(song int) bool {
	return C.fc14dec_reinit(d.ptr, C.int(song)) != 0
}

func (d *Decoder) Songs() int {
	return int(C.fc14dec_songs(d.ptr))
}

func (d *Decoder) Duration() uint32 {
	return uint32(C.fc14dec_duration(d.ptr))
}

func (d *Decoder) FormatID() string {
	return C.GoString(C.fc14dec_format_id(d.ptr))
}

func (d *Decoder) FormatName() string {
	return C.GoString(C.fc14dec_format_name(d.ptr))
}

func (d *Decoder) EndShorts(enabled bool, secs int) {
	C.fc14dec_end_shorts(d.ptr, cbool(enabled), C.int(secs))
}

func (d *Decoder) MixerInit(rate, bits, channels, zero, panning int) {
	C.fc14dec_mixer_init(d.ptr, C.int(rate), C.int(bits), C.int(channels), C.int(zero), C.int(panning))
}

func (d *Decoder) Fill(buf []byte) {
	if len(buf) == 0 {
		return
	}
	C.fc14dec_buffer_fill(d.ptr, unsafe.Pointer(&buf[0]), C.ulong(len(buf)))
}

func (d *Decoder) SongEnd() bool {
	return C.fc14dec_song_end(d.ptr) != 0
}

func (d *Decoder) Seek(ms int64) {
	C.fc14dec_seek(d.ptr, C.long(ms))
}

// Close deletes the library instance. Later calls are no-ops.
func (d *Decoder) Close() error {
	if d.ptr == nil {
		return nil
	}
	C.fc14dec_delete(d.ptr)
	d.ptr = nil
	return nil
}
