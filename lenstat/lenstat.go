// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lenstat provides summary statistics for collections of
// sequence lengths.
package lenstat

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds length statistics in bases.
type Summary struct {
	Count int
	Size  int // Total length of all sequences.
	Min   int
	Max   int
	Mean  float64
	N50   int
}

// N50 returns the length l such that sequences of length at least l
// account for at least half of the total length. It returns zero for an
// empty collection. The lengths slice is not modified.
func N50(lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	sorted := make([]int, len(lengths))
	copy(sorted, lengths)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	var total int
	for _, l := range sorted {
		total += l
	}
	var csum int
	for _, l := range sorted {
		csum += l
		if 2*csum >= total {
			return l
		}
	}
	return 0
}

// Summarize returns the Summary of lengths.
func Summarize(lengths []int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}
	f := make([]float64, len(lengths))
	for i, l := range lengths {
		f[i] = float64(l)
	}
	return Summary{
		Count: len(lengths),
		Size:  int(floats.Sum(f)),
		Min:   int(floats.Min(f)),
		Max:   int(floats.Max(f)),
		Mean:  stat.Mean(f, nil),
		N50:   N50(lengths),
	}
}
