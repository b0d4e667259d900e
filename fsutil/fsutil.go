// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsutil provides file placement helpers for pipeline outputs.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrExist is returned when a destination exists and force is false.
var ErrExist = errors.New("fsutil: destination exists")

// Check returns the absolute form of path, or an error if path does not
// exist.
func Check(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	_, err = os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("fsutil: file not found %q: %w", abs, err)
	}
	return abs, nil
}

// prepare checks src and clears dst if force is set, returning the
// absolute source path.
func prepare(src, dst string, force bool) (string, error) {
	src, err := Check(src)
	if err != nil {
		return "", err
	}
	_, err = os.Lstat(dst)
	switch {
	case err == nil:
		if !force {
			return "", fmt.Errorf("%w: %q", ErrExist, dst)
		}
		err = os.Remove(dst)
		if err != nil {
			return "", err
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}
	return src, nil
}

// Link creates dst as a symbolic link to the absolute path of src and
// returns the absolute path of dst.
func Link(src, dst string, force bool) (string, error) {
	src, err := prepare(src, dst, force)
	if err != nil {
		return "", err
	}
	err = os.Symlink(src, dst)
	if err != nil {
		return "", err
	}
	return filepath.Abs(dst)
}

// Copy copies the contents and permissions of src to dst and returns the
// absolute path of dst.
func Copy(src, dst string, force bool) (string, error) {
	src, err := prepare(src, dst, force)
	if err != nil {
		return "", err
	}
	err = copyFile(src, dst)
	if err != nil {
		return "", err
	}
	return filepath.Abs(dst)
}

// Move renames src to dst and returns the absolute path of dst. If the
// rename fails, for example across file systems, Move falls back to
// copying and removing src.
func Move(src, dst string, force bool) (string, error) {
	src, err := prepare(src, dst, force)
	if err != nil {
		return "", err
	}
	if os.Rename(src, dst) != nil {
		err = copyFile(src, dst)
		if err != nil {
			return "", err
		}
		err = os.Remove(src)
		if err != nil {
			return "", err
		}
	}
	return filepath.Abs(dst)
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = io.Copy(out, in)
	return err
}
