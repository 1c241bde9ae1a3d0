package model

// EventKind is the command category of a decoded channel message.
type EventKind uint8

const (
	NoteOff EventKind = iota
	NoteOn
	PolyAftertouch
	ControlChange
	ProgramChange
	ChannelAftertouch
	PitchBend
)

var kindNames = [...]string{
	"NoteOff",
	"NoteOn",
	"PolyAftertouch",
	"ControlChange",
	"ProgramChange",
	"ChannelAftertouch",
	"PitchBend",
}

func (k EventKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// SustainController is the controller number of the sustain pedal.
const SustainController = 64

// Event is a single decoded MIDI channel message. For note events
// Data1 is the note number and Data2 the velocity; for control changes
// Data1 is the controller number and Data2 the value.
//
// A NoteOn with velocity 0 never appears here: the decoder normalizes
// it to NoteOff, so NoteOff is the only "note deactivated" signal.
type Event struct {
	Kind        EventKind
	Channel     uint8 // 0-15
	Data1       uint8
	Data2       uint8
	TimestampMS int32
}

// Note interprets Data1 as a note number.
func (e Event) Note() Note {
	return NoteFromNumber(e.Data1)
}
