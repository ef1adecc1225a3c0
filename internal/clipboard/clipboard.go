// Package clipboard moves slice results between utf8slice invocations and other programs.
//
// On macOS, this uses the system pasteboard and thus works across all applications.
// Elsewhere, contents are kept in a file in the user's data directory.
package clipboard

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/dpinela/utf8slice/internal/atomicwrite"
	"github.com/pkg/errors"
	"github.com/tajtiattila/basedir"
)

// A Store holds clipboard contents.
// The zero Store uses the system pasteboard when there is one.
type Store struct {
	// Path, if set, names the file that holds the contents; the system pasteboard
	// is then never used.
	Path string
}

// Copy overwrites the clipboard's contents with data.
func (s Store) Copy(data []byte) error {
	if s.Path == "" && runtime.GOOS == "darwin" {
		if err := copyToPasteboard(data); err == nil {
			return nil
		}
	}
	return errors.WithMessage(s.copyFile(data), "copy failed")
}

// Paste returns the data most recently stored with Copy, or the contents of the
// system pasteboard if that is in use.
func (s Store) Paste() ([]byte, error) {
	if s.Path == "" && runtime.GOOS == "darwin" {
		if data, err := pastePasteboard(); err == nil {
			return data, nil
		}
	}
	data, err := s.pasteFile()
	return data, errors.WithMessage(err, "paste failed")
}

func (s Store) filename() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := basedir.Data.EnsureDir("utf8slice", 0700)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clipboard"), nil
}

func (s Store) copyFile(data []byte) error {
	p, err := s.filename()
	if err != nil {
		return err
	}
	return atomicwrite.Write(p, func(w io.Writer) error { _, err := w.Write(data); return err })
}

func (s Store) pasteFile() ([]byte, error) {
	p, err := s.filename()
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func copyToPasteboard(b []byte) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = bytes.NewReader(b)
	return cmd.Run()
}

func pastePasteboard() ([]byte, error) {
	return exec.Command("pbpaste").Output()
}
