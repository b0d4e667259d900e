// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqlen keeps sequences that are longer than a length
// cut-off. Input may be FASTA or FASTQ, optionally gzip
// compressed; output is always FASTA. The number of
// sequences and bases kept is reported on stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"

	"github.com/biogo/asmprep/fastx"
)

var (
	inf   = flag.String("in", "", "input sequence file name (required)")
	outf  = flag.String("out", "", "output file name. Defaults to stdout")
	min   = flag.Int("min", 2500, "minimum sequence length cut-off (bp)")
	width = flag.Int("width", 60, "output line width")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *inf == "" {
		flag.Usage()
		os.Exit(1)
	}

	in, err := fastx.Open(*inf, alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	}

	out := os.Stdout
	if *outf != "" {
		out, err = os.Create(*outf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *outf, err)
		}
	}

	n, bases, err := keepLonger(fasta.NewWriter(out, *width), in, *min)
	cerr := in.Close()
	if err != nil {
		log.Fatalf("failed to filter %q: %v", *inf, err)
	}
	if cerr != nil {
		log.Fatalf("failed to close %q: %v", *inf, cerr)
	}
	err = out.Close()
	if err != nil {
		log.Fatalf("failed to close output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Kept %d sequences (%d bases) longer than %d bp.\n", n, bases, *min)
}

// keepLonger writes the sequences from r that are longer than min to w
// and returns the number of sequences and bases written.
func keepLonger(w seqio.Writer, r seqio.Reader, min int) (n, bases int, err error) {
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		if s.Len() <= min {
			continue
		}
		_, err = w.Write(s)
		if err != nil {
			return n, bases, fmt.Errorf("failed to write sequence %q: %w", s.Name(), err)
		}
		n++
		bases += s.Len()
	}
	return n, bases, sc.Error()
}
