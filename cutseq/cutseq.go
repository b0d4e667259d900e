// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cutseq extracts a region of a named sequence from a FASTA or FASTQ
// file and prints it as FASTA. Positions are 1-based and inclusive; an
// end position of 1 or less extracts to the end of the sequence. If the
// name occurs more than once, the last record with that name is used.
//
// Usage:
//
//	cutseq -id scf00001 -s 2 -e 2000 genome.fasta
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/sequtils"

	"github.com/biogo/asmprep/fastx"
)

var (
	id    = flag.String("id", "", "name of the sequence to cut (required)")
	start = flag.Int("s", 1, "start position of the cut (1-based)")
	end   = flag.Int("e", 1, "end position of the cut (inclusive, <=1 means sequence end)")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -id <name> [-s start] [-e end] <input>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *id == "" || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := fastx.Open(flag.Arg(0), alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer f.Close()

	s, err := find(f, *id)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if s == nil {
		log.Printf("sequence %s does not exist, please confirm input", *id)
		return
	}
	r, err := cut(s, *start, *end)
	if err != nil {
		log.Fatalf("failed to cut %q: %v", *id, err)
	}
	fmt.Printf("%a\n", r)
}

// find returns the last sequence in r named id, or nil if there is none.
func find(r seqio.Reader, id string) (*linear.Seq, error) {
	var found *linear.Seq
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if s.ID == id {
			found = s
		}
	}
	return found, sc.Error()
}

// cut returns the region [start, end] of s in 1-based inclusive
// coordinates, named id_start_end. An end of 1 or less is taken to be
// the end of s. The region is clamped to the extent of s.
func cut(s *linear.Seq, start, end int) (*linear.Seq, error) {
	if end <= 1 {
		end = s.Len()
	}
	r := linear.NewSeq(fmt.Sprintf("%s_%d_%d", s.ID, start, end), nil, s.Alphabet())
	lo, hi := start-1, end
	if lo < 0 {
		lo = 0
	}
	if hi > s.Len() {
		hi = s.Len()
	}
	if lo >= hi {
		return r, nil
	}
	err := sequtils.Truncate(r, s, lo, hi)
	if err != nil {
		return nil, err
	}
	return r, nil
}
