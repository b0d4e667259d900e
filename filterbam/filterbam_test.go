// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/biogo/hts/sam"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const reads = "@HD\tVN:1.5\tSO:unknown\n" +
	"r1\t4\t*\t0\t255\t*\t*\t0\t0\tACGT\tIIII\trq:f:0.9\n" +
	"r2\t4\t*\t0\t255\t*\t*\t0\t0\tAC\tII\trq:f:0.99\n" +
	"r3\t4\t*\t0\t255\t*\t*\t0\t0\tACGTA\tIIIII\trq:f:0.5\n" +
	"r4\t4\t*\t0\t255\t*\t*\t0\t0\tACGTAC\tIIIIII\n" +
	"r5\t4\t*\t0\t255\t*\t*\t0\t0\tTTT\tIII\trq:f:0.85\n" +
	"r6\t4\t*\t0\t255\t*\t*\t0\t0\tGGGGGGG\tIIIIIII\trq:f:1\n"

type names []string

func (n *names) Write(r *sam.Record) error {
	*n = append(*n, r.Name)
	return nil
}

func (s *S) TestFilter(c *check.C) {
	for i, t := range []struct {
		minLen int
		minQV  float64
		limit  int
		want   []string
		bases  int
	}{
		{minLen: 3, minQV: 0.8, want: []string{"r1", "r5", "r6"}, bases: 14},
		{minLen: 0, minQV: 0, want: []string{"r1", "r2", "r3", "r5", "r6"}, bases: 21},
		{minLen: 5, minQV: 0.95, want: []string{"r6"}, bases: 7},
		{minLen: 3, minQV: 0.8, limit: 7, want: []string{"r1", "r5"}, bases: 7},
		{minLen: 3, minQV: 0.8, limit: 1, want: []string{"r1"}, bases: 4},
		{minLen: 100, minQV: 0, want: nil, bases: 0},
	} {
		r, err := sam.NewReader(strings.NewReader(reads))
		c.Assert(err, check.Equals, nil)
		var got names
		n, b, err := filter(&got, r, t.minLen, t.minQV, t.limit)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check([]string(got), check.DeepEquals, t.want, check.Commentf("Test %d", i))
		c.Check(n, check.Equals, len(t.want), check.Commentf("Test %d", i))
		c.Check(b, check.Equals, t.bases, check.Commentf("Test %d", i))
	}
}
