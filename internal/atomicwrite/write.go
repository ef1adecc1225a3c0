// Package atomicwrite writes files so that readers never observe partial content.
package atomicwrite

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Permissions given to files that don't exist yet.
const defaultPerms os.FileMode = 0644

// Write atomically replaces the file at filename with the content produced by contentWriter.
// The file is created if it doesn't exist; otherwise its permission bits are kept.
func Write(filename string, contentWriter func(io.Writer) error) (err error) {
	defer func() {
		if err != nil {
			err = errors.Wrap(err, "atomic write to "+filename+" failed")
		}
	}()
	perms := defaultPerms
	if info, err := os.Stat(filename); err == nil {
		perms = info.Mode().Perm()
	} else if !os.IsNotExist(err) {
		return err
	}
	// The temporary file must live on the same filesystem for the rename to be atomic.
	tf, err := os.CreateTemp(filepath.Dir(filename), ".utf8slice-atomic-write-")
	if err != nil {
		return err
	}
	name := tf.Name()
	if err = contentWriter(tf); err != nil {
		tf.Close()
		os.Remove(name)
		return err
	}
	if err = tf.Chmod(perms); err != nil {
		tf.Close()
		os.Remove(name)
		return err
	}
	if err = tf.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err = os.Rename(name, filename); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
