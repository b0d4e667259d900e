// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastx provides a streaming reader for FASTA and FASTQ sequence
// files, optionally gzip compressed.
//
// Records are returned as *linear.Seq values holding only the record
// identifier and its sequence letters. Descriptions, quality lines and
// separator lines are discarded. The reader is lenient: blank lines are
// ignored, FASTA lines starting with '#' are treated as comments and a
// truncated trailing FASTQ record is dropped without error.
package fastx

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Format is a sequence file syntax.
type Format int

const (
	FASTA Format = iota + 1
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "FASTA"
	case FASTQ:
		return "FASTQ"
	}
	return "unknown"
}

// Marker returns the header line marker for the format, or zero if the
// format is not valid.
func (f Format) Marker() byte {
	switch f {
	case FASTA:
		return '>'
	case FASTQ:
		return '@'
	}
	return 0
}

const gzipSuffix = ".gz"

var suffixes = []struct {
	suffix string
	format Format
}{
	{".fasta", FASTA},
	{".fa", FASTA},
	{".fastq", FASTQ},
	{".fq", FASTQ},
}

// Detect returns the format of the named file and whether it is gzip
// compressed, based only on the file name suffix. Recognised suffixes
// are .fasta, .fa, .fastq and .fq, each optionally followed by .gz.
func Detect(name string) (f Format, gzipped bool, err error) {
	base := name
	if strings.HasSuffix(base, gzipSuffix) {
		base = strings.TrimSuffix(base, gzipSuffix)
		gzipped = true
	}
	for _, s := range suffixes {
		if strings.HasSuffix(base, s.suffix) {
			return s.format, gzipped, nil
		}
	}
	return 0, false, &FormatError{Name: name}
}

// Reader is a pull-based FASTA or FASTQ record reader. It satisfies the
// seqio.Reader interface.
type Reader struct {
	r      *bufio.Reader
	format Format
	alpha  alphabet.Alphabet

	// In-progress record state.
	open  bool
	id    string
	body  []byte
	lines int

	err error
}

// NewReader returns a Reader that parses records in format f from r.
// Returned sequences use the alphabet alpha.
func NewReader(r io.Reader, f Format, alpha alphabet.Alphabet) *Reader {
	return &Reader{
		r:      bufio.NewReader(r),
		format: f,
		alpha:  alpha,
	}
}

// Format returns the format the Reader parses.
func (r *Reader) Format() Format { return r.format }

// Read returns the next record in the stream as a *linear.Seq. At the
// end of the stream Read returns io.EOF. Any other error is sticky.
func (r *Reader) Read() (seq.Sequence, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.format.Marker() == 0 {
		r.err = &FormatError{Name: r.format.String(), Msg: "is not a sequence format"}
		return nil, r.err
	}
	for {
		line, err := r.r.ReadBytes('\n')
		if len(line) != 0 {
			if s := r.consume(line); s != nil {
				return s, nil
			}
		}
		if err != nil {
			if err != io.EOF {
				r.err = &IOError{Op: "read", Err: err}
				return nil, r.err
			}
			r.err = io.EOF
			if s := r.flush(); s != nil {
				return s, nil
			}
			return nil, io.EOF
		}
	}
}

// consume feeds a single line to the state machine, returning a completed
// record if the line terminated one.
func (r *Reader) consume(line []byte) *linear.Seq {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}
	switch r.format {
	case FASTA:
		if line[0] == '#' {
			return nil
		}
		if line[0] == '>' {
			s := r.flush()
			r.start(line)
			return s
		}
		if r.open {
			r.body = append(r.body, line...)
		}
	case FASTQ:
		// A quality line may start with '@', so a header is only
		// recognised at a record boundary.
		if line[0] == '@' && (r.lines == 0 || r.lines >= 4) {
			s := r.flush()
			r.start(line)
			return s
		}
		if !r.open {
			return nil
		}
		r.lines++
		if r.lines == 2 {
			r.body = append(r.body, line...)
		}
	}
	return nil
}

func (r *Reader) start(header []byte) {
	r.open = true
	r.lines = 1
	r.body = r.body[:0]
	f := bytes.Fields(bytes.TrimLeft(header, string(r.format.Marker())))
	if len(f) == 0 {
		r.id = ""
	} else {
		r.id = string(f[0])
	}
}

// flush completes the in-progress record. It returns nil if there is no
// record or if the record is structurally incomplete.
func (r *Reader) flush() *linear.Seq {
	if !r.open {
		return nil
	}
	r.open = false
	if r.format == FASTQ && r.lines != 4 {
		return nil
	}
	b := make([]byte, len(r.body))
	copy(b, r.body)
	return linear.NewSeq(r.id, alphabet.BytesToLetters(b), r.alpha)
}
