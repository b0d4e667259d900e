// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The allot program splits a FASTA or FASTQ sequence file, optionally
// gzip compressed, into a series of FASTA files named name.1.fa,
// name.2.fa and so on, each holding about the specified number of bases.
// The absolute path of each file is printed to stdout once it has been
// written.
//
// Usage:
//
//	allot [-b 10mb] [-n out] reads.fq.gz > split.list
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"

	"github.com/biogo/asmprep/allot/shard"
	"github.com/biogo/asmprep/bases"
	"github.com/biogo/asmprep/fastx"
)

var (
	base string
	name string
	help = flag.Bool("help", false, "help prints this message.")
)

func init() {
	const (
		baseUsage = "specifies the number of bases in each output file (k, m and g suffixes accepted)"
		nameUsage = "specifies the output file name prefix"
	)
	flag.StringVar(&base, "base", "10mb", baseUsage)
	flag.StringVar(&base, "b", "10mb", baseUsage+" (shorthand)")
	flag.StringVar(&name, "name", "out", nameUsage)
	flag.StringVar(&name, "n", "out", nameUsage+" (shorthand)")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <input.{fa,fasta,fq,fastq}[.gz]>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	in := flag.Arg(0)

	capacity, err := bases.Capacity(base)
	if err != nil {
		log.Fatalf("failed to parse base size: %v", err)
	}

	f, err := fastx.Open(in, alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	_, err = shard.Partition(f, name, capacity, func(s shard.Shard) error {
		_, err := fmt.Println(s.Path)
		return err
	})
	cerr := f.Close()
	if err != nil {
		log.Fatalf("failed to allot %q: %v", in, err)
	}
	if cerr != nil {
		log.Fatalf("failed to close input: %v", cerr)
	}
}
