// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// filterbam filters PacBio reads in BAM or SAM format by read quality
// (the rq tag) and read length, writing retained reads to a BAM file.
// Filtering stops once the retained reads reach a total base count.
//
// Usage:
//
//	filterbam [-minlen 500] [-minqv 0.8] [-base 500Mb] [-o out.bam] input.bam
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"github.com/biogo/asmprep/bases"
)

var (
	minLen = flag.Int("minlen", 500, "minimum read length")
	minQV  = flag.Float64("minqv", 0.8, "minimum read quality (rq tag)")
	base   = flag.String("base", "500Mb", "stop after retaining this many bases (0 for no limit)")
	out    = flag.String("o", "out.bam", "output BAM file name")
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
	in := flag.Arg(0)

	limit, err := bases.Parse(*base)
	if err != nil {
		log.Fatalf("failed to parse base limit: %v", err)
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("failed to open %q: %v", in, err)
	}
	defer f.Close()
	var (
		r recordReader
		h *sam.Header
	)
	switch {
	case strings.HasSuffix(in, ".bam"):
		br, err := bam.NewReader(f, 0)
		if err != nil {
			log.Fatalf("failed to read BAM %q: %v", in, err)
		}
		defer br.Close()
		r, h = br, br.Header()
	case strings.HasSuffix(in, ".sam"):
		sr, err := sam.NewReader(f)
		if err != nil {
			log.Fatalf("failed to read SAM %q: %v", in, err)
		}
		r, h = sr, sr.Header()
	default:
		log.Fatalf("%q file format error", in)
	}

	o, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create %q: %v", *out, err)
	}
	defer o.Close()
	bw, err := bam.NewWriter(o, h, 0)
	if err != nil {
		log.Fatalf("failed to write BAM header: %v", err)
	}

	n, b, err := filter(bw, r, *minLen, *minQV, limit)
	if err != nil {
		log.Fatalf("failed to filter %q: %v", in, err)
	}
	err = bw.Close()
	if err != nil {
		log.Fatalf("failed to close %q: %v", *out, err)
	}
	fmt.Fprintf(os.Stderr, "Retained %d reads (%d bases) in `%s'.\n", n, b, *out)
}

type recordReader interface {
	Read() (*sam.Record, error)
}

type recordWriter interface {
	Write(*sam.Record) error
}

// filter writes records from r that have a read quality of at least minQV
// and a sequence length of at least minLen to w. If limit is positive,
// filter stops once the retained sequence length reaches limit. It
// returns the number of records and bases retained.
func filter(w recordWriter, r recordReader, minLen int, minQV float64, limit int) (n, total int, err error) {
	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return n, total, nil
			}
			return n, total, err
		}
		qv, ok := quality(rec)
		if !ok || qv < minQV || rec.Seq.Length < minLen {
			continue
		}
		err = w.Write(rec)
		if err != nil {
			return n, total, err
		}
		n++
		total += rec.Seq.Length
		if limit > 0 && total >= limit {
			return n, total, nil
		}
	}
}

var rqTag = sam.NewTag("rq")

// quality returns the value of the rq read quality tag of rec.
func quality(rec *sam.Record) (float64, bool) {
	aux := rec.AuxFields.Get(rqTag)
	if aux == nil {
		return 0, false
	}
	switch v := aux.Value().(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int8:
		return float64(v), true
	case uint8:
		return float64(v), true
	case int16:
		return float64(v), true
	case uint16:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
