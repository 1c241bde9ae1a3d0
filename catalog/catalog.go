// Package catalog is the static table of supported chord shapes.
package catalog

import (
	"sort"

	"github.com/jsphweid/chordeye/model"
)

// Declaration order matters for tie-breaking in partial matching:
// simpler shapes come first, so ties resolve to the earlier entry.
var chordTypes = []model.ChordType{
	{Name: "Major", Symbol: "", Intervals: []int{0, 4, 7}},
	{Name: "Minor", Symbol: "m", Intervals: []int{0, 3, 7}},
	{Name: "Diminished", Symbol: "dim", Intervals: []int{0, 3, 6}},
	{Name: "Augmented", Symbol: "aug", Intervals: []int{0, 4, 8}},
	{Name: "Suspended 2nd", Symbol: "sus2", Intervals: []int{0, 2, 7}},
	{Name: "Suspended 4th", Symbol: "sus4", Intervals: []int{0, 5, 7}},
	{Name: "Major 6th", Symbol: "6", Intervals: []int{0, 4, 7, 9}},
	{Name: "Minor 6th", Symbol: "m6", Intervals: []int{0, 3, 7, 9}},
	{Name: "Dominant 7th", Symbol: "7", Intervals: []int{0, 4, 7, 10}},
	{Name: "Major 7th", Symbol: "maj7", Intervals: []int{0, 4, 7, 11}},
	{Name: "Minor 7th", Symbol: "m7", Intervals: []int{0, 3, 7, 10}},
	{Name: "Minor Major 7th", Symbol: "mMaj7", Intervals: []int{0, 3, 7, 11}},
	{Name: "Half-Diminished 7th", Symbol: "m7b5", Intervals: []int{0, 3, 6, 10}},
	{Name: "Diminished 7th", Symbol: "dim7", Intervals: []int{0, 3, 6, 9}},
	{Name: "Dominant 7th Suspended 4th", Symbol: "7sus4", Intervals: []int{0, 5, 7, 10}},
	{Name: "Added 9th", Symbol: "add9", Intervals: []int{0, 4, 7, 14}},
	{Name: "Dominant 9th", Symbol: "9", Intervals: []int{0, 4, 7, 10, 14}},
	{Name: "Major 9th", Symbol: "maj9", Intervals: []int{0, 4, 7, 11, 14}},
	{Name: "Minor 9th", Symbol: "m9", Intervals: []int{0, 3, 7, 10, 14}},
	{Name: "Six Nine", Symbol: "6/9", Intervals: []int{0, 4, 7, 9, 14}},
	{Name: "Dominant 11th", Symbol: "11", Intervals: []int{0, 4, 7, 10, 14, 17}},
	{Name: "Minor 11th", Symbol: "m11", Intervals: []int{0, 3, 7, 10, 14, 17}},
	{Name: "Dominant 13th", Symbol: "13", Intervals: []int{0, 4, 7, 10, 14, 21}},
}

// All returns the catalog in declaration order.
func All() []model.ChordType {
	res := make([]model.ChordType, len(chordTypes))
	copy(res, chordTypes)
	return res
}

// Normalize shifts an interval set so it starts at 0: subtract the
// minimum from every element mod 12, then sort and dedupe.
func Normalize(intervals []int) []int {
	if len(intervals) == 0 {
		return nil
	}
	min := intervals[0]
	for _, v := range intervals {
		if v < min {
			min = v
		}
	}
	seen := make(map[int]bool, len(intervals))
	var res []int
	for _, v := range intervals {
		iv := ((v-min)%12 + 12) % 12
		if !seen[iv] {
			seen[iv] = true
			res = append(res, iv)
		}
	}
	sort.Ints(res)
	return res
}

// Lookup finds the single shape whose pitch classes exactly match the
// given intervals, which need not be normalized. The catalog never
// holds two shapes with the same normalized pitch-class set, so at
// most one entry can match.
func Lookup(intervals []int) (model.ChordType, bool) {
	want := Normalize(intervals)
	for _, ct := range chordTypes {
		if equalInts(ct.PitchClasses(), want) {
			return ct, true
		}
	}
	return model.ChordType{}, false
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
