// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shard distributes sequence records over a numbered series of
// FASTA files, each holding approximately a fixed number of bases.
//
// A shard is rotated only once its base count has reached the capacity,
// so the record that tips a shard over capacity stays in that shard and
// the next non-empty record starts the following one. Shards may therefore
// exceed the capacity by up to the length of one record. Empty records
// never start a new shard.
package shard

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/asmprep/bases"
	"github.com/biogo/asmprep/fastx"
)

// Shard describes one output file.
type Shard struct {
	Index   int    // 1-based position in the series.
	Path    string // Absolute path of the file.
	Bases   int    // Sum of the sequence lengths written.
	Records int    // Number of records written.
}

// Name returns the file name of the shard with the given index.
func Name(prefix string, index int) string {
	return fmt.Sprintf("%s.%d.fa", prefix, index)
}

// Partitioner writes sequences to a series of shards. It satisfies the
// seqio.Writer interface. A Partitioner is not safe for concurrent use.
type Partitioner struct {
	prefix   string
	capacity int
	done     func(Shard) error

	cur Shard
	f   *os.File
	w   *bufio.Writer
}

// New returns a Partitioner writing shards named prefix.N.fa with the
// given capacity in bases. The first shard is created immediately. If
// done is not nil it is called with each shard once the shard has been
// closed.
func New(prefix string, capacity int, done func(Shard) error) (*Partitioner, error) {
	if capacity <= 0 {
		return nil, &bases.ConfigError{Value: fmt.Sprint(capacity), Msg: "capacity must be positive"}
	}
	p := &Partitioner{prefix: prefix, capacity: capacity, done: done}
	err := p.create(1)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Partitioner) create(index int) error {
	name := Name(p.prefix, index)
	path, err := filepath.Abs(name)
	if err != nil {
		return &fastx.IOError{Op: "create", Path: name, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &fastx.IOError{Op: "create", Path: path, Err: err}
	}
	p.f = f
	p.w = bufio.NewWriter(f)
	p.cur = Shard{Index: index, Path: path}
	return nil
}

// finalize flushes and closes the current shard and reports it.
func (p *Partitioner) finalize() error {
	err := p.w.Flush()
	if err != nil {
		p.f.Close()
		p.f = nil
		return &fastx.IOError{Op: "write", Path: p.cur.Path, Err: err}
	}
	err = p.f.Close()
	p.f = nil
	if err != nil {
		return &fastx.IOError{Op: "close", Path: p.cur.Path, Err: err}
	}
	if p.done != nil {
		return p.done(p.cur)
	}
	return nil
}

// Current returns the state of the currently open shard.
func (p *Partitioner) Current() Shard { return p.cur }

// Write writes s to the current shard in FASTA format with the sequence
// on a single line, first rotating to a new shard if the current shard
// has reached capacity and s is not empty.
func (p *Partitioner) Write(s seq.Sequence) (int, error) {
	if p.f == nil {
		return 0, &fastx.IOError{Op: "write", Path: p.cur.Path, Err: os.ErrClosed}
	}
	if p.cur.Bases >= p.capacity && p.cur.Records != 0 && s.Len() != 0 {
		err := p.finalize()
		if err != nil {
			return 0, err
		}
		err = p.create(p.cur.Index + 1)
		if err != nil {
			return 0, err
		}
	}
	n, err := fmt.Fprintf(p.w, "%a\n", s)
	if err != nil {
		return n, &fastx.IOError{Op: "write", Path: p.cur.Path, Err: err}
	}
	p.cur.Bases += s.Len()
	p.cur.Records++
	return n, nil
}

// Close finalizes the last shard. The last shard is always reported, even
// when it is empty.
func (p *Partitioner) Close() error {
	if p.f == nil {
		return nil
	}
	return p.finalize()
}

// abort closes the current shard without reporting it.
func (p *Partitioner) abort() {
	if p.f == nil {
		return
	}
	p.w.Flush()
	p.f.Close()
	p.f = nil
}

var _ seqio.Writer = (*Partitioner)(nil)

// Partition writes all sequences from r to shards named prefix.N.fa
// holding about capacity bases each. If done is not nil it is called with
// each shard as it is completed. Partition returns the completed shards in
// the order they were created. On error, shards already written are left
// in place.
func Partition(r seqio.Reader, prefix string, capacity int, done func(Shard) error) ([]Shard, error) {
	var shards []Shard
	p, err := New(prefix, capacity, func(s Shard) error {
		shards = append(shards, s)
		if done != nil {
			return done(s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sc := seqio.NewScanner(r)
	for sc.Next() {
		_, err = p.Write(sc.Seq())
		if err != nil {
			p.abort()
			return shards, err
		}
	}
	err = sc.Error()
	if err != nil {
		p.abort()
		return shards, err
	}
	err = p.Close()
	return shards, err
}
