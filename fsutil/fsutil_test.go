// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func write(c *check.C, path, content string) {
	c.Assert(os.WriteFile(path, []byte(content), 0o640), check.Equals, nil)
}

func read(c *check.C, path string) string {
	b, err := os.ReadFile(path)
	c.Assert(err, check.Equals, nil)
	return string(b)
}

func (s *S) TestCheck(c *check.C) {
	dir := c.MkDir()
	p := filepath.Join(dir, "a.fa")
	write(c, p, ">a\nA\n")
	got, err := Check(p)
	c.Check(err, check.Equals, nil)
	c.Check(got, check.Equals, p)

	_, err = Check(filepath.Join(dir, "missing"))
	c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true)
}

type op struct {
	name string
	fn   func(src, dst string, force bool) (string, error)
}

var ops = []op{
	{"link", Link},
	{"copy", Copy},
	{"move", Move},
}

func (s *S) TestOps(c *check.C) {
	for _, o := range ops {
		dir := c.MkDir()
		src := filepath.Join(dir, "src.bam")
		dst := filepath.Join(dir, "dst.bam")
		write(c, src, "reads")

		got, err := o.fn(src, dst, false)
		c.Assert(err, check.Equals, nil, check.Commentf("%s", o.name))
		c.Check(got, check.Equals, dst, check.Commentf("%s", o.name))
		c.Check(read(c, dst), check.Equals, "reads", check.Commentf("%s", o.name))

		_, err = os.Stat(src)
		if o.name == "move" {
			c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true, check.Commentf("%s", o.name))
		} else {
			c.Check(err, check.Equals, nil, check.Commentf("%s", o.name))
		}
		if o.name == "link" {
			target, err := os.Readlink(dst)
			c.Check(err, check.Equals, nil)
			c.Check(target, check.Equals, src)
		}
	}
}

func (s *S) TestForce(c *check.C) {
	for _, o := range ops {
		dir := c.MkDir()
		src := filepath.Join(dir, "src")
		dst := filepath.Join(dir, "dst")
		write(c, src, "new")
		write(c, dst, "old")

		_, err := o.fn(src, dst, false)
		c.Check(errors.Is(err, ErrExist), check.Equals, true, check.Commentf("%s", o.name))
		c.Check(read(c, dst), check.Equals, "old", check.Commentf("%s", o.name))

		_, err = o.fn(src, dst, true)
		c.Check(err, check.Equals, nil, check.Commentf("%s", o.name))
		c.Check(read(c, dst), check.Equals, "new", check.Commentf("%s", o.name))
	}
}

func (s *S) TestMissingSource(c *check.C) {
	for _, o := range ops {
		dir := c.MkDir()
		_, err := o.fn(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"), true)
		c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true, check.Commentf("%s", o.name))
	}
}
