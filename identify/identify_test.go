package identify

import (
	"testing"

	"github.com/jsphweid/chordeye/model"
	"github.com/stretchr/testify/assert"
)

func notes(nums ...uint8) []model.ActiveNote {
	res := make([]model.ActiveNote, 0, len(nums))
	for _, n := range nums {
		res = append(res, model.ActiveNote{Note: n, Velocity: 100})
	}
	return res
}

func TestExactIdentifiesMajorTriad(t *testing.T) {
	c, ok := Exact(notes(60, 64, 67)) // C4 E4 G4

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("Major", c.Type.Name)
	assert.Equal(0, c.Inversion)
	assert.Nil(c.Bass)
	assert.Equal("C", c.Name())
}

func TestExactIdentifiesFirstInversion(t *testing.T) {
	c, ok := Exact(notes(64, 67, 72)) // E4 G4 C5

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("Major", c.Type.Name)
	assert.Equal(1, c.Inversion)
	if assert.NotNil(c.Bass) {
		assert.Equal(model.E, *c.Bass)
	}
	assert.Equal("C/E", c.Name())
}

func TestExactIdentifiesSeventhChordInversion(t *testing.T) {
	c, ok := Exact(notes(59, 60, 64, 67)) // B3 C4 E4 G4

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("maj7", c.Type.Symbol)
	assert.Equal(3, c.Inversion)
	if assert.NotNil(c.Bass) {
		assert.Equal(model.B, *c.Bass)
	}
}

func TestExactRequiresThreePitchClasses(t *testing.T) {
	_, ok := Exact(notes(60, 64))
	assert.False(t, ok)

	// octave doubling does not add a pitch class
	_, ok = Exact(notes(60, 64, 72, 76))
	assert.False(t, ok)
}

func TestExactReturnsNothingForUnknownShape(t *testing.T) {
	_, ok := Exact(notes(60, 61, 62))
	assert.False(t, ok)
}

func TestSymmetricChordResolvesToLowestRoot(t *testing.T) {
	// every note of a dim7 yields the same interval set; the contract
	// is that the lowest pitch class wins
	c, ok := Exact(notes(63, 66, 69, 72)) // D#4 F#4 A4 C5

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("dim7", c.Type.Symbol)
}

func TestPartialMatchesMajorSeventhMissingFifth(t *testing.T) {
	input := notes(60, 64, 71) // C4 E4 B4

	_, ok := Exact(input)
	assert.False(t, ok)

	c, ok := New().Identify(input)
	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("maj7", c.Type.Symbol)
	assert.Equal(0, c.Inversion)
}

func TestIdentifyPrefersExactMatch(t *testing.T) {
	c, ok := New().Identify(notes(60, 64, 67))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("Major", c.Type.Name)
}

func TestPartialTieResolvesToLowestRoot(t *testing.T) {
	// C4 E4 G4 B4 plus a C#3 bass: root C scores Cmaj7 and root C#
	// scores C#m7b5 identically (4 of 5 played classes, full shape);
	// the documented tie-break picks the lower root
	c, ok := New().Identify(notes(49, 60, 64, 67, 71))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(model.C, c.Root)
	assert.Equal("maj7", c.Type.Symbol)
}

func TestPartialForeignBassMakesSlashChord(t *testing.T) {
	c, ok := New().Identify(notes(49, 60, 64, 67, 71))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(0, c.Inversion)
	if assert.NotNil(c.Bass) {
		assert.Equal(model.CSharp, *c.Bass)
	}
	assert.Equal("Cmaj7/C#", c.Name())
}

func TestPartialRejectsBelowThreshold(t *testing.T) {
	_, ok := New().Identify(notes(60, 61, 62))
	assert.False(t, ok)
}

func TestPartialRequiresThreePitchClasses(t *testing.T) {
	_, ok := New().Identify(notes(60, 64))
	assert.False(t, ok)
}

func TestIdentifyIsDeterministic(t *testing.T) {
	input := notes(60, 64, 71)
	id := New()

	first, ok1 := id.Identify(input)
	second, ok2 := id.Identify(input)

	assert := assert.New(t)
	assert.True(ok1)
	assert.True(ok2)
	assert.True(first.Equal(second))
}

func TestZeroValueIdentifierUsesDefaultThreshold(t *testing.T) {
	var id Identifier
	c, ok := id.Identify(notes(60, 64, 71))

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal("maj7", c.Type.Symbol)
}

func TestMatchScore(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1.0, matchScore([]int{0, 4, 7}, []int{0, 4, 7}))
	assert.Equal(0.0, matchScore([]int{1, 2}, []int{0, 4, 7}))
	// 3 of 4 target intervals, all 3 played ones in the target
	assert.InDelta(0.857, matchScore([]int{0, 4, 11}, []int{0, 4, 7, 11}), 0.001)
}
