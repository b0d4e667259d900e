// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bases resolves human-readable sequence size strings such as
// "10mb" or "1.5g" to base counts.
package bases

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConfigError is returned when a size or capacity setting is invalid.
type ConfigError struct {
	Value string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bases: invalid size %q: %s", e.Value, e.Msg)
}

// Longest suffixes first so "mb" is not taken as "b".
var units = []struct {
	suffix string
	scale  float64
}{
	{"gb", 1e9},
	{"mb", 1e6},
	{"kb", 1e3},
	{"bp", 1},
	{"g", 1e9},
	{"m", 1e6},
	{"k", 1e3},
	{"b", 1},
}

// Parse returns the number of bases described by s. The number may be
// fractional and may be followed by a case-insensitive unit: k or kb
// (×10³), m or mb (×10⁶), g or gb (×10⁹), or b or bp. The result is
// truncated to an integer.
func Parse(s string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	scale := 1.0
	for _, u := range units {
		if strings.HasSuffix(v, u.suffix) {
			v = strings.TrimSuffix(v, u.suffix)
			scale = u.scale
			break
		}
	}
	if v == "" {
		return 0, &ConfigError{Value: s, Msg: "missing number"}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &ConfigError{Value: s, Msg: "not a number"}
	}
	n := f * scale
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0) || n > math.MaxInt64:
		return 0, &ConfigError{Value: s, Msg: "out of range"}
	case n < 0:
		return 0, &ConfigError{Value: s, Msg: "negative size"}
	}
	return int(n), nil
}

// Capacity is Parse restricted to positive results.
func Capacity(s string) (int, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, &ConfigError{Value: s, Msg: "capacity must be positive"}
	}
	return n, nil
}
