// Command utf8slice slices UTF-8 text by character position.
//
// Usage:
//
//	utf8slice [options] len [FILE]
//	utf8slice [options] slice BEGIN END [FILE]
//	utf8slice [options] from BEGIN [FILE]
//	utf8slice [options] till END [FILE]
//	utf8slice [options] inspect [FILE]
//	utf8slice [options] config
//
// Input is read from FILE, or from standard input if FILE is absent or "-".
// Indices that fall outside the text give an empty result, not an error.
package main

import (
	"os"

	"github.com/dpinela/utf8slice/internal/clipboard"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	a := &app{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		isTerminal: terminal.IsTerminal(int(os.Stdout.Fd())),
		clip:       clipboard.Store{},
	}
	os.Exit(a.run(os.Args[1:]))
}
