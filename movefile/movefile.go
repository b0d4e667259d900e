// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// movefile moves a set of files into a directory, renaming each so that
// the leading component of its name (up to the first '.') is replaced by
// a common prefix. For example, with -prefix sample1, the file
// run/abc.subreads.bam is moved to run/sample1.subreads.bam.
//
// Usage:
//
//	movefile [-path dir] [-prefix out] file...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/asmprep/fsutil"
)

var (
	path   = flag.String("path", "", "destination directory (defaults to each file's directory)")
	prefix = flag.String("prefix", "out", "replacement for the leading component of file names")
	force  = flag.Bool("force", false, "overwrite existing destination files")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	for _, file := range flag.Args() {
		dir := *path
		if dir == "" {
			dir = filepath.Dir(file)
		}
		dir, err := fsutil.Check(dir)
		if err != nil {
			log.Fatalf("failed to find destination: %v", err)
		}
		dst := filepath.Join(dir, rename(filepath.Base(file), *prefix))
		log.Printf("mv %s %s", file, dst)
		_, err = fsutil.Move(file, dst, *force)
		if err != nil {
			log.Fatalf("failed to move %q: %v", file, err)
		}
	}
}

// rename replaces the part of name before the first '.' with prefix.
func rename(name, prefix string) string {
	old := strings.SplitN(name, ".", 2)[0]
	return strings.Replace(name, old, prefix, 1)
}
