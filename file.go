// SPDX-License-Identifier: EPL-2.0

package fcdec

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/fcdec/host"
)

var errNegativeLength = errors.New("negative file length")

// readWhole reads the complete content of f into a buffer sized from its
// length and closes f.
func readWhole(f host.File) ([]byte, error) {
	defer f.Close()

	size, err := f.Len()
	if err != nil {
		return nil, fmt.Errorf("file length: %w", err)
	}
	if size < 0 {
		return nil, errNegativeLength
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("read module: %w", err)
	}
	return buf, nil
}

// loadFile opens uri through the host and reads it whole.
func (p *Plugin) loadFile(uri string) ([]byte, error) {
	f, err := p.api.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", uri, err)
	}
	return readWhole(f)
}
