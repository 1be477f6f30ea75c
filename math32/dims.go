// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dims is a list of vector dimension (component) names
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
	DimsN
)

var dimsNames = [...]string{"X", "Y", "Z", "W"}

// String returns the name of the dimension.
func (d Dims) String() string {
	if d < 0 || d >= DimsN {
		return "Dims(?)"
	}
	return dimsNames[d]
}

// OtherDim returns the dimension other than the two given ones,
// among X, Y, Z.
func OtherDim(d0, d1 Dims) Dims {
	return 3 - d0 - d1
}
