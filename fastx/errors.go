// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fastx

import "fmt"

// FormatError is returned when the sequence format of an input cannot
// be determined.
type FormatError struct {
	Name string
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("fastx: %q file format error", e.Name)
	}
	return fmt.Sprintf("fastx: %q %s", e.Name, e.Msg)
}

// IOError is returned when a stream cannot be opened, read, written or
// closed. Op names the failed operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("fastx: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fastx: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
