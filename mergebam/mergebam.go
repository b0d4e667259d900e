// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mergebam merges BAM files by sample. The sample name of a file is the
// part of its base name after "--" up to ".bam", or, if there is no "--",
// the part before the first '.'. Files of a single-file sample are copied
// to sample.bam; other samples are merged record by record into
// sample.bam using the header of the first file.
//
// Usage:
//
//	mergebam run1--sampleA.bam run2--sampleA.bam sampleB.subreads.bam
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bam"

	"github.com/biogo/asmprep/fsutil"
)

var (
	force = flag.Bool("force", false, "overwrite existing output files")
	help  = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.bam...\n", os.Args[0])
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

	samples, files := group(flag.Args())
	for _, name := range samples {
		src := files[name]
		target := name + ".bam"
		var err error
		if len(src) == 1 {
			target, err = fsutil.Copy(src[0], target, *force)
		} else {
			target, err = merge(target, src, *force)
		}
		if err != nil {
			log.Fatalf("failed to merge sample %s: %v", name, err)
		}
		fmt.Printf("merge %s:%s\t%s\n", name, strings.Join(src, ","), target)
	}
}

// sample returns the sample name for a BAM file path.
func sample(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "--"); i >= 0 {
		name = name[i+2:]
		if j := strings.Index(name, ".bam"); j >= 0 {
			name = name[:j]
		}
		return name
	}
	return strings.SplitN(name, ".", 2)[0]
}

// group groups paths by sample, returning the sample names in order of
// first appearance.
func group(paths []string) ([]string, map[string][]string) {
	var names []string
	files := make(map[string][]string)
	for _, p := range paths {
		name := sample(p)
		if _, ok := files[name]; !ok {
			names = append(names, name)
		}
		files[name] = append(files[name], p)
	}
	return names, files
}

// merge writes the records of all BAM files in src to dst, using the
// header of the first file. It returns the absolute path of dst.
func merge(dst string, src []string, force bool) (string, error) {
	if _, err := os.Stat(dst); err == nil && !force {
		return "", fmt.Errorf("%w: %q", fsutil.ErrExist, dst)
	}
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	var bw *bam.Writer
	for _, p := range src {
		p, err = fsutil.Check(p)
		if err != nil {
			return "", err
		}
		err = func() error {
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			defer f.Close()
			br, err := bam.NewReader(f, 0)
			if err != nil {
				return fmt.Errorf("failed to read BAM %q: %w", p, err)
			}
			defer br.Close()
			if bw == nil {
				bw, err = bam.NewWriter(out, br.Header(), 0)
				if err != nil {
					return err
				}
			}
			for {
				rec, err := br.Read()
				if err != nil {
					if err == io.EOF {
						return nil
					}
					return fmt.Errorf("failed to read record from %q: %w", p, err)
				}
				err = bw.Write(rec)
				if err != nil {
					return err
				}
			}
		}()
		if err != nil {
			return "", err
		}
	}
	if bw != nil {
		err = bw.Close()
		if err != nil {
			return "", err
		}
	}
	err = out.Close()
	if err != nil {
		return "", err
	}
	return filepath.Abs(dst)
}
