// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import (
	"errors"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	gzip "github.com/klauspost/pgzip"
)

// File is a Reader that owns its underlying file and decompressor.
type File struct {
	*Reader

	path string
	f    *os.File
	zr   *gzip.Reader
}

// Open opens the named FASTA or FASTQ file for reading. The format and
// compression are determined by Detect. The returned File must be closed
// by the caller, whether or not all records have been read.
func Open(path string, alpha alphabet.Alphabet) (*File, error) {
	format, gzipped, err := Detect(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	file := &File{path: path, f: f}
	var r io.Reader = f
	if gzipped {
		file.zr, err = gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Op: "open", Path: path, Err: err}
		}
		r = file.zr
	}
	file.Reader = NewReader(r, format, alpha)
	return file, nil
}

// Path returns the name of the file.
func (f *File) Path() string { return f.path }

// Close releases the decompressor, if any, and then the underlying file.
func (f *File) Close() error {
	var zerr error
	if f.zr != nil {
		zerr = f.zr.Close()
	}
	err := errors.Join(zerr, f.f.Close())
	if err != nil {
		return &IOError{Op: "close", Path: f.path, Err: err}
	}
	return nil
}
