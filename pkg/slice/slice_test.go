// Copyright (c) 2026 Filmotek. All rights reserved.
// Author: k.petrov.dev@gmail.com

package slice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpetrov/filmotek/pkg/slice"
)

func TestMap(t *testing.T) {
	doubled := slice.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestFilter(t *testing.T) {
	even := slice.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, slice.Dedupe([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, slice.Dedupe([]int{}))
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name   string
		first  []int
		second []int
		want   []int
	}{
		{"overlap", []int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3}},
		{"disjoint", []int{1, 2}, []int{3, 4}, []int{}},
		{"empty_first", []int{}, []int{1, 2}, []int{}},
		{"duplicates_collapse", []int{2, 2, 3}, []int{2, 3, 3}, []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slice.Intersect(tt.first, tt.second))
		})
	}
}
