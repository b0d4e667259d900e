// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfa filters assembly graphs in GFA format by segment length.
package gfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the segment link graph of a GFA file.
type Graph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	names map[int64]string

	// adj holds the neighbours of each segment.
	adj map[int64][]int64

	// long holds segments that meet the length threshold.
	long map[int64]bool
}

func newGraph() *Graph {
	return &Graph{
		g:     simple.NewUndirectedGraph(),
		ids:   make(map[string]int64),
		names: make(map[int64]string),
		adj:   make(map[int64][]int64),
		long:  make(map[int64]bool),
	}
}

func (g *Graph) node(name string) int64 {
	id, ok := g.ids[name]
	if ok {
		return id
	}
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.ids[name] = n.ID()
	g.names[n.ID()] = name
	return n.ID()
}

func (g *Graph) link(a, b string) {
	u, v := g.node(a), g.node(b)
	if u == v || g.g.HasEdgeBetween(u, v) {
		return
	}
	g.g.SetEdge(g.g.NewEdge(g.g.Node(u), g.g.Node(v)))
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
}

// Links returns the number of distinct links between segments.
func (g *Graph) Links() int {
	n := 0
	for _, to := range g.adj {
		n += len(to)
	}
	return n / 2
}

// Kept returns the set of segment names that are at least the length
// threshold, together with the segments directly linked to them.
func (g *Graph) Kept() map[string]bool {
	kept := make(map[string]bool)
	for id := range g.long {
		kept[g.names[id]] = true
		for _, to := range g.adj[id] {
			kept[g.names[to]] = true
		}
	}
	return kept
}

// Read builds the link graph from a GFA stream, marking segments with
// at least minLen bases as long.
func Read(r io.Reader, minLen int) (*Graph, error) {
	g := newGraph()
	err := records(r, func(f []string) error {
		switch f[0] {
		case "S":
			if len(f) < 3 {
				return fmt.Errorf("gfa: short segment line: %q", strings.Join(f, "\t"))
			}
			id := g.node(f[1])
			n, err := segmentLen(f)
			if err != nil {
				return err
			}
			if n >= minLen {
				g.long[id] = true
			}
		case "L":
			if len(f) < 4 {
				return fmt.Errorf("gfa: short link line: %q", strings.Join(f, "\t"))
			}
			g.link(f[1], f[3])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// segmentLen returns the length of a segment, using the LN tag when the
// sequence is omitted.
func segmentLen(f []string) (int, error) {
	if f[2] != "*" {
		return len(f[2]), nil
	}
	for _, t := range f[3:] {
		if strings.HasPrefix(t, "LN:i:") {
			n, err := strconv.Atoi(t[len("LN:i:"):])
			if err != nil {
				return 0, fmt.Errorf("gfa: invalid length tag for segment %q: %v", f[1], err)
			}
			return n, nil
		}
	}
	return 0, nil
}

// records calls fn with the tab-separated fields of each non-blank,
// non-comment line of r.
func records(r io.Reader, fn func([]string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<30)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		err := fn(strings.Split(line, "\t"))
		if err != nil {
			return err
		}
	}
	return sc.Err()
}

// Filter writes to dst the lines of the GFA in src that belong to the
// graph around segments of at least minLen bases. Segment lines are kept
// if the segment is long or linked to a long segment; link lines are kept
// if either end is kept. All other record types are retained.
func Filter(dst io.Writer, src io.ReadSeeker, minLen int) error {
	g, err := Read(src, minLen)
	if err != nil {
		return err
	}
	kept := g.Kept()
	_, err = src.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(dst)
	err = records(src, func(f []string) error {
		switch f[0] {
		case "S":
			if !kept[f[1]] {
				return nil
			}
		case "L":
			if !kept[f[1]] && !kept[f[3]] {
				return nil
			}
		}
		_, err := fmt.Fprintln(w, strings.Join(f, "\t"))
		return err
	})
	if err != nil {
		return err
	}
	return w.Flush()
}
