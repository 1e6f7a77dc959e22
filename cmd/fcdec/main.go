// SPDX-License-Identifier: EPL-2.0

// Command fcdec lists, renders and plays Future Composer and Hippel modules.
//
// Usage:
//
//	fcdec list [flags] file...
//	fcdec render [flags] -o out.wav file
//	fcdec play [flags] file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/ik5/fcdec/decoder/fc14"
)

// buildType is set with -ldflags "-X main.buildType=release".
var buildType = "dev"

const usage = `usage: fcdec <command> [flags] file...

commands:
  list     print the sub-songs found in each file
  render   decode one sub-song to a WAV file
  play     decode one sub-song to the default audio device

run "fcdec <command> -h" for the flags of a command
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	env := environment{
		fs:         afero.NewOsFs(),
		newDecoder: fc14.New,
		stdout:     stdout,
		stderr:     stderr,
	}

	err := dispatch(env, args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "fcdec: %v\n", err)
		return 1
	}
	return 0
}
