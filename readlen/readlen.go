// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// readlen draws a read length histogram from a FASTA or FASTQ file,
// optionally gzip compressed. The histogram spans lengths from -xmin to
// 2.5 times the N50 of the reads, and is written to out.reads_length.png
// and out.reads_length.pdf.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/asmprep/fastx"
	"github.com/biogo/asmprep/lenstat"
)

var (
	bins = flag.Int("bins", 50, "number of histogram bins")
	xmin = flag.Int("xmin", 0, "minimum read length shown")
	out  = flag.String("out", "out", "output file name prefix")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 || *bins < 1 {
		flag.Usage()
		os.Exit(1)
	}

	f, err := fastx.Open(flag.Arg(0), alphabet.DNA)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	var lengths []int
	sc := seqio.NewScanner(f)
	for sc.Next() {
		lengths = append(lengths, sc.Seq().Len())
	}
	if sc.Error() != nil {
		log.Fatalf("failed during read: %v", sc.Error())
	}
	f.Close()

	sum := lenstat.Summarize(lengths)
	fmt.Fprintf(os.Stderr, "%+v\n", sum)

	p, err := histogram(lengths, *bins, float64(*xmin), 2.5*float64(sum.N50))
	if err != nil {
		log.Fatalf("failed to draw histogram: %v", err)
	}
	for _, ext := range []string{"png", "pdf"} {
		name := fmt.Sprintf("%s.reads_length.%s", *out, ext)
		err = p.Save(10*vg.Inch, 6*vg.Inch, name)
		if err != nil {
			log.Fatalf("failed to save %q: %v", name, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote `%s'.\n", name)
	}
}

// histogram returns a plot of the distribution of lengths within
// [min, max] using n equal width bins spanning the whole range. Lengths
// outside the range are not counted.
func histogram(lengths []int, n int, min, max float64) (*plot.Plot, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid bin count: %d", n)
	}
	if max <= min {
		return nil, fmt.Errorf("empty length range [%v, %v]", min, max)
	}
	v := inRange(lengths, min, max)
	if len(v) == 0 {
		return nil, fmt.Errorf("no lengths in range [%v, %v]", min, max)
	}

	p := plot.New()
	p.X.Label.Text = "Length"
	p.Y.Label.Text = "Count"

	h := &plotter.Histogram{
		Bins:      binned(v, n, min, max),
		Width:     (max - min) / float64(n),
		FillColor: color.NRGBA{R: 0xcb, G: 0x41, B: 0x6b, A: 0xbf},
	}
	p.Add(h)
	p.X.Min = min
	p.X.Max = max
	return p, nil
}

// inRange returns the lengths within [min, max].
func inRange(lengths []int, min, max float64) plotter.Values {
	var v plotter.Values
	for _, l := range lengths {
		if x := float64(l); min <= x && x <= max {
			v = append(v, x)
		}
	}
	return v
}

// binned counts v into n equal width bins over [min, max]. Values equal
// to max fall in the last bin.
func binned(v plotter.Values, n int, min, max float64) []plotter.HistogramBin {
	w := (max - min) / float64(n)
	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i].Min = min + float64(i)*w
		bins[i].Max = min + float64(i+1)*w
	}
	bins[n-1].Max = max
	for _, x := range v {
		i := int((x - min) / w)
		if i >= n {
			i = n - 1
		}
		bins[i].Weight++
	}
	return bins
}
