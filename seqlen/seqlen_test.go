// Copyright ©2017 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"

	"github.com/biogo/asmprep/fastx"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

type names []string

func (n *names) Write(s seq.Sequence) (int, error) {
	*n = append(*n, s.Name())
	return s.Len(), nil
}

type failWriter struct{}

var errFull = errors.New("full")

func (failWriter) Write(seq.Sequence) (int, error) { return 0, errFull }

const reads = ">r1\nACGT\n>r2\nAC\n>r3\nACGTACGT\n>r4\n>r5\nACG\n"

func (s *S) TestKeepLonger(c *check.C) {
	for i, t := range []struct {
		min   int
		want  []string
		bases int
	}{
		{min: 0, want: []string{"r1", "r2", "r3", "r5"}, bases: 17},
		{min: 3, want: []string{"r1", "r3"}, bases: 12},
		{min: 4, want: []string{"r3"}, bases: 8},
		{min: 8, want: nil, bases: 0},
	} {
		var got names
		n, bases, err := keepLonger(&got, fastx.NewReader(strings.NewReader(reads), fastx.FASTA, alphabet.DNA), t.min)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check([]string(got), check.DeepEquals, t.want, check.Commentf("Test %d", i))
		c.Check(n, check.Equals, len(t.want), check.Commentf("Test %d", i))
		c.Check(bases, check.Equals, t.bases, check.Commentf("Test %d", i))
	}
}

func (s *S) TestKeepLongerErrors(c *check.C) {
	_, _, err := keepLonger(failWriter{}, fastx.NewReader(strings.NewReader(reads), fastx.FASTA, alphabet.DNA), 0)
	c.Check(errors.Is(err, errFull), check.Equals, true)

	_, _, err = keepLonger(&names{}, fastx.NewReader(strings.NewReader("@q\nAC\n"), fastx.Format(0), alphabet.DNA), 0)
	var fe *fastx.FormatError
	c.Check(errors.As(err, &fe), check.Equals, true)
}
