package model

import "sort"

// ChordType describes a chord shape by its intervals above the root.
// Intervals are sorted, deduplicated and always include 0. Extended
// shapes keep literal values above 11 (14 = 9th, 17 = 11th, 21 = 13th);
// they are reduced mod 12 only when comparing pitch classes.
type ChordType struct {
	Name      string
	Symbol    string
	Intervals []int
}

// PitchClasses reduces the shape's intervals to distinct pitch-class
// offsets 0-11, sorted.
func (t ChordType) PitchClasses() []int {
	var seen [12]bool
	var res []int
	for _, iv := range t.Intervals {
		pc := ((iv % 12) + 12) % 12
		if seen[pc] {
			continue
		}
		seen[pc] = true
		res = append(res, pc)
	}
	sort.Ints(res)
	return res
}

func (t ChordType) Equal(other ChordType) bool {
	if t.Name != other.Name || t.Symbol != other.Symbol {
		return false
	}
	if len(t.Intervals) != len(other.Intervals) {
		return false
	}
	for i, iv := range t.Intervals {
		if iv != other.Intervals[i] {
			return false
		}
	}
	return true
}

// Chord is an identified chord. Inversion indexes into the chord's own
// pitch-class sequence. Bass is set whenever the lowest-sounding pitch
// class differs from the root; when it is not a member of the chord,
// Inversion is 0 and the chord is a slash chord.
type Chord struct {
	Root      PitchClass
	Type      ChordType
	Inversion int
	Bass      *PitchClass
}

// Name renders the display name, e.g. "C", "Dm7" or "Cmaj7/B".
func (c Chord) Name() string {
	name := c.Root.String() + c.Type.Symbol
	if c.Bass != nil && *c.Bass != c.Root {
		name += "/" + c.Bass.String()
	}
	return name
}

// Equal reports value equality. Chords are rebuilt on every active-set
// change, so this is what listeners use to suppress duplicates.
func (c Chord) Equal(other Chord) bool {
	if c.Root != other.Root || c.Inversion != other.Inversion || !c.Type.Equal(other.Type) {
		return false
	}
	if (c.Bass == nil) != (other.Bass == nil) {
		return false
	}
	return c.Bass == nil || *c.Bass == *other.Bass
}
