// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"gopkg.in/check.v1"

	"github.com/biogo/asmprep/fsutil"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestSample(c *check.C) {
	for i, t := range []struct {
		path, want string
	}{
		{"run1--sampleA.bam", "sampleA"},
		{"/data/m54/run2--sampleA.ccs.bam", "sampleA.ccs"},
		{"sampleB.subreads.bam", "sampleB"},
		{"dir/sampleC", "sampleC"},
		{"x--y", "y"},
	} {
		c.Check(sample(t.path), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestGroup(c *check.C) {
	names, files := group([]string{
		"a/run1--s2.bam",
		"s1.subreads.bam",
		"b/run2--s2.bam",
		"s3.bam",
	})
	c.Check(names, check.DeepEquals, []string{"s2", "s1", "s3"})
	c.Check(files, check.DeepEquals, map[string][]string{
		"s2": {"a/run1--s2.bam", "b/run2--s2.bam"},
		"s1": {"s1.subreads.bam"},
		"s3": {"s3.bam"},
	})
}

const header = "@HD\tVN:1.5\tSO:unknown\n"

func writeBAM(c *check.C, path, text string) {
	sr, err := sam.NewReader(strings.NewReader(text))
	c.Assert(err, check.Equals, nil)
	f, err := os.Create(path)
	c.Assert(err, check.Equals, nil)
	bw, err := bam.NewWriter(f, sr.Header(), 1)
	c.Assert(err, check.Equals, nil)
	for {
		rec, err := sr.Read()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.Equals, nil)
		c.Assert(bw.Write(rec), check.Equals, nil)
	}
	c.Assert(bw.Close(), check.Equals, nil)
	c.Assert(f.Close(), check.Equals, nil)
}

func readNames(c *check.C, path string) []string {
	f, err := os.Open(path)
	c.Assert(err, check.Equals, nil)
	defer f.Close()
	br, err := bam.NewReader(f, 1)
	c.Assert(err, check.Equals, nil)
	defer br.Close()
	var names []string
	for {
		rec, err := br.Read()
		if err == io.EOF {
			break
		}
		c.Assert(err, check.Equals, nil)
		names = append(names, rec.Name)
	}
	return names
}

func (s *S) TestMerge(c *check.C) {
	dir := c.MkDir()
	a := filepath.Join(dir, "run1--s.bam")
	b := filepath.Join(dir, "run2--s.bam")
	writeBAM(c, a, header+
		"r1\t4\t*\t0\t255\t*\t*\t0\t0\tACGT\tIIII\n"+
		"r2\t4\t*\t0\t255\t*\t*\t0\t0\tAC\tII\n")
	writeBAM(c, b, header+
		"r3\t4\t*\t0\t255\t*\t*\t0\t0\tTTT\tIII\n")

	dst := filepath.Join(dir, "s.bam")
	got, err := merge(dst, []string{a, b}, false)
	c.Assert(err, check.Equals, nil)
	c.Check(got, check.Equals, dst)
	c.Check(readNames(c, dst), check.DeepEquals, []string{"r1", "r2", "r3"})

	_, err = merge(dst, []string{a, b}, false)
	c.Check(errors.Is(err, fsutil.ErrExist), check.Equals, true)

	_, err = merge(dst, []string{b, a}, true)
	c.Assert(err, check.Equals, nil)
	c.Check(readNames(c, dst), check.DeepEquals, []string{"r3", "r1", "r2"})

	_, err = merge(dst, []string{filepath.Join(dir, "missing.bam")}, true)
	c.Check(err, check.NotNil)
}
