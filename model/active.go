package model

import "time"

// ActiveNote is a note that is currently sounding: either held down or
// kept alive by the sustain pedal. Identity for lookup and removal is
// (Note, Channel).
type ActiveNote struct {
	Note        uint8 // 0-127
	Velocity    uint8 // 0-127
	Channel     uint8 // 0-15
	ActivatedAt time.Time
	Sustained   bool
}

// PitchClass reduces the note number to its pitch class.
func (a ActiveNote) PitchClass() PitchClass {
	return PitchClassOf(a.Note)
}
