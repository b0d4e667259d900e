// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqstats calculates and prints sequence statistics from
// a FASTA or FASTQ file, optionally gzip compressed. It
// is useful for checking read sets and assemblies before
// and after filtering. It prints: the total no. of
// sequences, total size (sum of all sequence lengths),
// Min, Max, Mean and N50.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"

	"github.com/biogo/asmprep/fastx"
	"github.com/biogo/asmprep/lenstat"
)

// binStats contains the basename of the file without
// any extension and the reported statistics in bp.
type binStats struct {
	name string
	lenstat.Summary
}

var (
	in   = flag.String("in", "", "input sequence file (required)")
	help = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}

	f, err := fastx.Open(*in, alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open %q: %v", *in, err)
	}
	b, err := stats(*in, f)
	cerr := f.Close()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if cerr != nil {
		log.Fatalf("failed to close %q: %v", *in, cerr)
	}
	// Print the statistics as key-value pairs.
	fmt.Printf("%+v\n", b)
}

// stats returns the length statistics of the sequences in r, labelled
// with the base name of path up to its first '.'.
func stats(path string, r seqio.Reader) (binStats, error) {
	var seqlens []int
	sc := seqio.NewScanner(r)
	for sc.Next() {
		seqlens = append(seqlens, sc.Seq().Len())
	}
	err := sc.Error()
	if err != nil {
		return binStats{}, err
	}
	return binStats{
		name:    strings.Split(filepath.Base(path), ".")[0],
		Summary: lenstat.Summarize(seqlens),
	}, nil
}
