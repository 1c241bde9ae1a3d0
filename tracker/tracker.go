// Package tracker maintains the set of currently sounding notes,
// including notes held over by the sustain pedal, and fans out change
// notifications to subscribers.
package tracker

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/chordeye/model"
)

type key struct {
	note, channel uint8
}

// Listener receives tracker notifications. Nil callbacks are skipped.
// Callbacks run synchronously on the goroutine feeding the tracker,
// after the state change has been committed; a panicking callback is
// recovered and does not starve the remaining listeners.
type Listener struct {
	NoteActivated      func(model.ActiveNote)
	NoteDeactivated    func(model.ActiveNote)
	ActiveNotesChanged func([]model.ActiveNote)
	SustainChanged     func(bool)
}

// Option configures a Tracker.
type Option func(*Tracker)

// MatchAnyChannel makes note-off lookups match by note number alone,
// for devices that split a key's on/off across channels.
func MatchAnyChannel() Option {
	return func(t *Tracker) { t.anyChannel = true }
}

// WithClock overrides the activation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// Tracker owns the active-note set. It is not safe for concurrent use:
// deliver events and read snapshots from a single goroutine.
type Tracker struct {
	active     map[key]model.ActiveNote
	sustain    bool
	anyChannel bool
	now        func() time.Time

	listeners map[uuid.UUID]Listener
	order     []uuid.UUID // subscription order, for deterministic fan-out
}

func New(opts ...Option) *Tracker {
	t := &Tracker{
		active:    make(map[key]model.ActiveNote),
		now:       time.Now,
		listeners: make(map[uuid.UUID]Listener),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subscribe registers a listener and returns a handle for Unsubscribe.
func (t *Tracker) Subscribe(l Listener) uuid.UUID {
	id := uuid.New()
	t.listeners[id] = l
	t.order = append(t.order, id)
	return id
}

func (t *Tracker) Unsubscribe(id uuid.UUID) {
	if _, ok := t.listeners[id]; !ok {
		return
	}
	delete(t.listeners, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Sustain reports whether the pedal is currently down.
func (t *Tracker) Sustain() bool {
	return t.sustain
}

// ActiveNotes returns a snapshot of the active set, sorted by note
// number then channel so tests and consumers see a stable order.
func (t *Tracker) ActiveNotes() []model.ActiveNote {
	res := make([]model.ActiveNote, 0, len(t.active))
	for _, n := range t.active {
		res = append(res, n)
	}
	sortNotes(res)
	return res
}

// OnEvent dispatches one decoded event. Events other than note on/off
// and the sustain controller are ignored.
func (t *Tracker) OnEvent(ev model.Event) {
	switch ev.Kind {
	case model.NoteOn:
		t.noteOn(ev)
	case model.NoteOff:
		t.noteOff(ev)
	case model.ControlChange:
		if ev.Data1 == model.SustainController {
			t.setSustain(ev.Data2 >= 64)
		}
	}
}

func (t *Tracker) noteOn(ev model.Event) {
	n := model.ActiveNote{
		Note:        ev.Data1,
		Velocity:    ev.Data2,
		Channel:     ev.Channel,
		ActivatedAt: t.now(),
	}
	// A retrigger on an already-active key replaces the old instance
	// in place: one map assignment, one activation notification.
	t.active[key{ev.Data1, ev.Channel}] = n
	t.notifyActivated(n)
	t.notifyChanged()
}

func (t *Tracker) noteOff(ev model.Event) {
	k, ok := t.lookup(ev.Data1, ev.Channel)
	if !ok {
		return
	}
	if t.sustain {
		// The pedal keeps it sounding; it leaves the set on pedal up.
		n := t.active[k]
		n.Sustained = true
		t.active[k] = n
		return
	}
	n := t.active[k]
	delete(t.active, k)
	t.notifyDeactivated(n)
	t.notifyChanged()
}

func (t *Tracker) lookup(note, channel uint8) (key, bool) {
	k := key{note, channel}
	if _, ok := t.active[k]; ok {
		return k, true
	}
	if !t.anyChannel {
		return key{}, false
	}
	// Any-channel mode: lowest channel wins so the pick is stable.
	var best key
	found := false
	for cand := range t.active {
		if cand.note != note {
			continue
		}
		if !found || cand.channel < best.channel {
			best = cand
			found = true
		}
	}
	return best, found
}

func (t *Tracker) setSustain(down bool) {
	if down == t.sustain {
		return
	}
	t.sustain = down
	t.notifySustain(down)
	if down {
		return
	}
	// Pedal up releases exactly the notes the pedal was holding.
	var released []model.ActiveNote
	for k, n := range t.active {
		if n.Sustained {
			released = append(released, n)
			delete(t.active, k)
		}
	}
	if len(released) == 0 {
		return
	}
	sortNotes(released)
	for _, n := range released {
		t.notifyDeactivated(n)
	}
	t.notifyChanged()
}

func sortNotes(notes []model.ActiveNote) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Note != notes[j].Note {
			return notes[i].Note < notes[j].Note
		}
		return notes[i].Channel < notes[j].Channel
	})
}

func (t *Tracker) notifyActivated(n model.ActiveNote) {
	for _, id := range t.order {
		if l, ok := t.listeners[id]; ok && l.NoteActivated != nil {
			safeNotify(func() { l.NoteActivated(n) })
		}
	}
}

func (t *Tracker) notifyDeactivated(n model.ActiveNote) {
	for _, id := range t.order {
		if l, ok := t.listeners[id]; ok && l.NoteDeactivated != nil {
			safeNotify(func() { l.NoteDeactivated(n) })
		}
	}
}

func (t *Tracker) notifyChanged() {
	snapshot := t.ActiveNotes()
	for _, id := range t.order {
		if l, ok := t.listeners[id]; ok && l.ActiveNotesChanged != nil {
			safeNotify(func() { l.ActiveNotesChanged(snapshot) })
		}
	}
}

func (t *Tracker) notifySustain(down bool) {
	for _, id := range t.order {
		if l, ok := t.listeners[id]; ok && l.SustainChanged != nil {
			safeNotify(func() { l.SustainChanged(down) })
		}
	}
}

// safeNotify keeps one broken listener from starving the rest.
func safeNotify(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
