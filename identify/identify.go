// Package identify names the chord spelled by a set of active notes.
// Exact matches the played pitch classes against the catalog; the
// Identifier adds best-effort partial matching on top for incomplete
// or extended voicings.
package identify

import (
	"sort"

	"github.com/jsphweid/chordeye/catalog"
	"github.com/jsphweid/chordeye/model"
	"github.com/jsphweid/chordeye/util"
)

// DefaultMinScore is the partial-match acceptance threshold.
const DefaultMinScore = 0.8

// Exact identifies the chord whose pitch classes exactly match the
// active notes. Fewer than 3 distinct pitch classes never identify.
// Candidate roots are tried in ascending pitch-class order and the
// first catalog hit wins, so symmetric shapes (dim7, aug) resolve to
// their lowest pitch-class root.
func Exact(notes []model.ActiveNote) (model.Chord, bool) {
	classes := distinctClasses(notes)
	if len(classes) < 3 {
		return model.Chord{}, false
	}
	for _, root := range classes {
		if ct, ok := catalog.Lookup(intervalsFrom(root, classes)); ok {
			return resolveBass(model.Chord{Root: root, Type: ct}, notes), true
		}
	}
	return model.Chord{}, false
}

// Identifier identifies chords with a partial-match fallback: when no
// shape fits exactly, every (root, shape) pair is scored and the best
// one at or above MinScore is accepted. The zero value uses
// DefaultMinScore.
type Identifier struct {
	MinScore float64
}

func New() *Identifier {
	return &Identifier{MinScore: DefaultMinScore}
}

// Identify is a pure function of the snapshot: equal inputs always
// yield value-equal results, which is what lets the notification layer
// suppress duplicates.
func (id *Identifier) Identify(notes []model.ActiveNote) (model.Chord, bool) {
	if c, ok := Exact(notes); ok {
		return c, true
	}
	classes := distinctClasses(notes)
	if len(classes) < 3 {
		return model.Chord{}, false
	}

	var (
		bestScore float64
		bestRoot  model.PitchClass
		bestType  model.ChordType
	)
	// Roots ascend, shapes follow catalog order, and only a strictly
	// greater score replaces the incumbent: ties resolve to the lowest
	// root, then the earliest catalog entry. This is a contract, not
	// an accident of iteration order.
	types := catalog.All()
	for _, root := range classes {
		actual := intervalsFrom(root, classes)
		for _, ct := range types {
			if score := matchScore(actual, ct.PitchClasses()); score > bestScore {
				bestScore = score
				bestRoot = root
				bestType = ct
			}
		}
	}
	if bestScore < id.threshold() {
		return model.Chord{}, false
	}
	return resolveBass(model.Chord{Root: bestRoot, Type: bestType}, notes), true
}

func (id *Identifier) threshold() float64 {
	if id.MinScore <= 0 {
		return DefaultMinScore
	}
	return id.MinScore
}

// matchScore is the harmonic mean of precision and recall between the
// played interval set and a shape's interval set.
func matchScore(actual, target []int) float64 {
	targetSet := make(map[int]bool, len(target))
	for _, v := range target {
		targetSet[v] = true
	}
	var inter int
	for _, v := range actual {
		if targetSet[v] {
			inter++
		}
	}
	if inter == 0 {
		return 0
	}
	precision := float64(inter) / float64(len(actual))
	recall := float64(inter) / float64(len(target))
	return 2 * precision * recall / (precision + recall)
}

// distinctClasses reduces the snapshot to its distinct pitch classes,
// ascending.
func distinctClasses(notes []model.ActiveNote) []model.PitchClass {
	set := make(map[model.PitchClass]bool, len(notes))
	for _, n := range notes {
		set[n.PitchClass()] = true
	}
	classes := util.Keys(set)
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })
	return classes
}

// intervalsFrom measures every pitch class against the candidate root,
// (other - root + 12) mod 12, sorted. The root contributes 0.
func intervalsFrom(root model.PitchClass, classes []model.PitchClass) []int {
	res := make([]int, 0, len(classes))
	for _, pc := range classes {
		res = append(res, pc.Interval(root))
	}
	sort.Ints(res)
	return res
}

// resolveBass fills in inversion and bass from the lowest-sounding
// note. A bass inside the chord's own pitch-class sequence gives its
// index as the inversion; a foreign bass gives a slash chord with
// inversion 0.
func resolveBass(c model.Chord, notes []model.ActiveNote) model.Chord {
	if len(notes) == 0 {
		return c
	}
	low := notes[0]
	for _, n := range notes[1:] {
		if n.Note < low.Note {
			low = n
		}
	}
	bass := low.PitchClass()
	if bass == c.Root {
		return c
	}
	b := bass
	c.Bass = &b
	for i, pc := range chordClasses(c.Root, c.Type) {
		if pc == bass {
			c.Inversion = i
			return c
		}
	}
	c.Inversion = 0
	return c
}

// chordClasses is the chord's own pitch-class sequence: the root plus
// each catalog interval reduced mod 12, in interval order, deduped.
func chordClasses(root model.PitchClass, t model.ChordType) []model.PitchClass {
	var seen [12]bool
	res := make([]model.PitchClass, 0, len(t.Intervals))
	for _, iv := range t.Intervals {
		pc := model.PitchClass((root.Position() + ((iv%12)+12)%12) % 12)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		res = append(res, pc)
	}
	return res
}
