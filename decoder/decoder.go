// Package decoder turns raw MIDI bytes into typed events. It handles
// the standard stream form with running status as well as the USB-MIDI
// style 4-byte event packets some transports deliver.
package decoder

import "github.com/jsphweid/chordeye/model"

// Data byte counts per status command (high nibble). Commands outside
// this table are not channel messages and never produce an event.
var dataLengths = map[uint8]int{
	0x8: 2, // note off
	0x9: 2, // note on
	0xA: 2, // polyphonic aftertouch
	0xB: 2, // control change
	0xC: 1, // program change
	0xD: 1, // channel aftertouch
	0xE: 2, // pitch bend
}

var kinds = map[uint8]model.EventKind{
	0x8: model.NoteOff,
	0x9: model.NoteOn,
	0xA: model.PolyAftertouch,
	0xB: model.ControlChange,
	0xC: model.ProgramChange,
	0xD: model.ChannelAftertouch,
	0xE: model.PitchBend,
}

// Decoder decodes one MIDI stream. It keeps the running status byte
// between calls, so a Decoder must only ever see a single stream, fed
// from a single goroutine.
type Decoder struct {
	runningStatus uint8
}

func New() *Decoder {
	return &Decoder{}
}

// Reset forgets the running status, e.g. after a port reconnect.
func (d *Decoder) Reset() {
	d.runningStatus = 0
}

// Decode reads at most one message from buf[offset : offset+length].
// It returns false when the window holds no decodable event: too few
// bytes, an unrecognized command, or a data byte with no running
// status to attach it to. None of these abort the stream; the caller
// just moves on to the next delivery.
func (d *Decoder) Decode(buf []byte, offset, length int, timestampMS int32) (model.Event, bool) {
	var none model.Event
	if offset < 0 || length <= 0 || offset+length > len(buf) {
		return none, false
	}
	window := buf[offset : offset+length]

	// USB-MIDI event packet: [cable<<4|CIN, status, data1, data2].
	// CIN 0x8-0xE marks a channel event; the triplet is self-contained
	// and bypasses running status entirely.
	if length >= 4 && window[0]>>4 == 0 {
		if cin := window[0] & 0x0F; cin >= 0x8 && cin <= 0xE {
			return decodeChannelMessage(window[1], window[2:4], timestampMS)
		}
	}

	status := d.runningStatus
	data := window
	if window[0]&0x80 != 0 {
		status = window[0]
		data = window[1:]
		if status >= 0xF0 {
			// System messages carry no channel. System common also
			// cancels running status; realtime (0xF8+) leaves it alone.
			if status < 0xF8 {
				d.runningStatus = 0
			}
			return none, false
		}
		d.runningStatus = status
	} else if status == 0 {
		return none, false
	}

	return decodeChannelMessage(status, data, timestampMS)
}

func decodeChannelMessage(status uint8, data []byte, timestampMS int32) (model.Event, bool) {
	var none model.Event
	cmd := status >> 4
	kind, ok := kinds[cmd]
	if !ok {
		return none, false
	}
	if len(data) < dataLengths[cmd] {
		return none, false
	}
	ev := model.Event{
		Kind:        kind,
		Channel:     status & 0x0F,
		Data1:       data[0],
		TimestampMS: timestampMS,
	}
	if dataLengths[cmd] == 2 {
		ev.Data2 = data[1]
	}
	// A note on with zero velocity is a note off in disguise.
	if ev.Kind == model.NoteOn && ev.Data2 == 0 {
		ev.Kind = model.NoteOff
	}
	return ev, true
}
