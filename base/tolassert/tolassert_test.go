// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) { r.failed = true }

func TestEqual(t *testing.T) {
	Equal(t, 1.0, 1.0004)
	EqualTol(t, float32(3), 3.05, 0.1)
	EqualTolSlice(t, []float32{1, 2}, []float32{1.01, 1.99}, 0.02)

	r := &recorder{}
	assert.False(t, EqualTol(r, 1.0, 1.1, 0.01))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTolSlice(r, []float64{1}, []float64{1, 2}, 0.1))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTolSlice(r, []float64{1, 2}, []float64{1, 3}, 0.1))
	assert.True(t, r.failed)
}
