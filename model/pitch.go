package model

// PitchClass is one of the 12 notes of the chromatic scale, C = 0.
type PitchClass uint8

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// PitchClassOf reduces a MIDI note number to its pitch class.
func PitchClassOf(noteNum uint8) PitchClass {
	return PitchClass(noteNum % 12)
}

// Position is the chromatic position, 0-11.
func (p PitchClass) Position() int {
	return int(p) % 12
}

func (p PitchClass) String() string {
	return sharpNames[p%12]
}

// FlatName is the flat spelling, e.g. "Db" instead of "C#".
func (p PitchClass) FlatName() string {
	return flatNames[p%12]
}

// Interval is the number of semitones from root up to p, 0-11.
func (p PitchClass) Interval(root PitchClass) int {
	return (p.Position() - root.Position() + 12) % 12
}
