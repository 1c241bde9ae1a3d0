package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   []int
		want []int
	}{
		{[]int{0, 4, 7}, []int{0, 4, 7}},
		{[]int{7, 4, 0}, []int{0, 4, 7}},
		{[]int{2, 6, 9}, []int{0, 4, 7}},
		{[]int{0, 4, 4, 7}, []int{0, 4, 7}},
		{[]int{0, 4, 7, 14}, []int{0, 2, 4, 7}},
		{nil, nil},
	}
	for _, c := range cases {
		name := fmt.Sprintf("normalize %v", c.in)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.want, Normalize(c.in))
		})
	}
}

func TestLookupExactShapes(t *testing.T) {
	cases := []struct {
		in     []int
		symbol string
	}{
		{[]int{0, 4, 7}, ""},
		{[]int{0, 3, 7}, "m"},
		{[]int{0, 4, 7, 11}, "maj7"},
		{[]int{0, 3, 6, 9}, "dim7"},
		{[]int{2, 6, 9}, ""}, // not zero-based, still a major triad
	}
	for _, c := range cases {
		name := fmt.Sprintf("lookup %v", c.in)
		t.Run(name, func(t *testing.T) {
			ct, ok := Lookup(c.in)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(c.symbol, ct.Symbol)
		})
	}
}

func TestLookupMatchesExtendedShapesByPitchClass(t *testing.T) {
	// the dominant 9th is declared as {0,4,7,10,14}; input intervals
	// are always mod 12
	ct, ok := Lookup([]int{0, 2, 4, 7, 10})

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("9", ct.Symbol)
	assert.Equal([]int{0, 4, 7, 10, 14}, ct.Intervals)
}

func TestLookupUnknownShape(t *testing.T) {
	_, ok := Lookup([]int{0, 1, 2})
	assert.False(t, ok)
}

func TestNoTwoShapesShareAPitchClassSet(t *testing.T) {
	seen := make(map[string]string)
	for _, ct := range All() {
		key := fmt.Sprintf("%v", ct.PitchClasses())
		if prev, ok := seen[key]; ok {
			t.Errorf("%v and %v share pitch-class set %v", prev, ct.Name, key)
		}
		seen[key] = ct.Name
	}
}

func TestEveryShapeStartsAtZero(t *testing.T) {
	for _, ct := range All() {
		assert.Equal(t, 0, ct.Intervals[0], ct.Name)
	}
}
