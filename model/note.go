package model

import "fmt"

// Note is a pitch class in a concrete octave. Octave numbering follows
// the convention where middle C (MIDI 60) is C4.
type Note struct {
	Class  PitchClass
	Octave int
}

// NoteFromNumber converts an absolute MIDI note number (0-127).
func NoteFromNumber(noteNum uint8) Note {
	return Note{
		Class:  PitchClassOf(noteNum),
		Octave: int(noteNum)/12 - 1,
	}
}

// Number is the absolute MIDI note number, (octave+1)*12 + position.
func (n Note) Number() uint8 {
	return uint8((n.Octave+1)*12 + n.Class.Position())
}

func (n Note) String() string {
	return fmt.Sprintf("%v%d", n.Class, n.Octave)
}
