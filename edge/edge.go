// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// edge adds an overlapping edge to each sequence of a circular genome
// assembly by appending a copy of the start of the sequence to its end,
// and marks the sequences as circular and complete.
//
// Usage:
//
//	edge [-overlap 5500] assembly.fasta > assembly_new.fasta
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/asmprep/fastx"
)

const circularDesc = "[topology=circular] [completeness=complete]"

var (
	overlap = flag.Int("overlap", 5500, "length of sequence start appended to the end")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 || *overlap < 0 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := fastx.Open(flag.Arg(0), alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer f.Close()

	out := bufio.NewWriter(os.Stdout)
	err = addEdges(out, f, *overlap)
	if err != nil {
		log.Fatalf("failed to add edges: %v", err)
	}
	err = out.Flush()
	if err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}

// addEdges writes each sequence from r to w with its first n letters
// appended to its end.
func addEdges(w io.Writer, r seqio.Reader, n int) error {
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		addEdge(s, n)
		_, err := fmt.Fprintf(w, "%a\n", s)
		if err != nil {
			return err
		}
	}
	return sc.Error()
}

// addEdge appends the first n letters of s to its end, or the whole of s
// if it is shorter than n, and annotates s as circular.
func addEdge(s *linear.Seq, n int) {
	if n > len(s.Seq) {
		n = len(s.Seq)
	}
	l := make(alphabet.Letters, len(s.Seq)+n)
	copy(l, s.Seq)
	copy(l[len(s.Seq):], s.Seq[:n])
	s.Seq = l
	s.Desc = circularDesc
}
