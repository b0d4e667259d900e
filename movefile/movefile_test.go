// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestRename(c *check.C) {
	for i, t := range []struct {
		name, prefix, want string
	}{
		{"abc.subreads.bam", "sample1", "sample1.subreads.bam"},
		{"reads", "out", "out"},
		{"a.a.fa", "x", "x.a.fa"},
		{".hidden", "p", "p.hidden"},
	} {
		c.Check(rename(t.name, t.prefix), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}
