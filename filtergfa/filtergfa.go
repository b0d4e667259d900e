// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// filtergfa removes short segments from an assembled GFA graph, keeping
// segments above the length cut-off, the segments linked to them and the
// links between kept segments.
//
// Usage:
//
//	filtergfa -minlen 1.5mb assembly.gfa > filtered.gfa
package main

import (
	"flag"
	"log"
	"os"

	"github.com/biogo/asmprep/bases"
	"github.com/biogo/asmprep/filtergfa/gfa"
)

var (
	minLen = flag.String("minlen", "1.5mb", "minimum segment length (k, m and g suffixes accepted)")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	min, err := bases.Parse(*minLen)
	if err != nil {
		log.Fatalf("failed to parse minimum length: %v", err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to open %q: %v", flag.Arg(0), err)
	}
	defer f.Close()
	log.Printf("reading graph from %q", flag.Arg(0))

	err = gfa.Filter(os.Stdout, f, min)
	if err != nil {
		log.Fatalf("failed to filter %q: %v", flag.Arg(0), err)
	}
}
