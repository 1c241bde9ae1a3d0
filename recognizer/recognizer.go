// Package recognizer wires the decoder, the note tracker and the
// chord identifier into one pipeline fed with raw transport bytes.
package recognizer

import (
	"github.com/google/uuid"
	"github.com/jsphweid/chordeye/decoder"
	"github.com/jsphweid/chordeye/identify"
	"github.com/jsphweid/chordeye/model"
	"github.com/jsphweid/chordeye/tracker"
)

// Listener receives chord notifications. Nil callbacks are skipped.
// A chord is only announced when it differs (by value) from the
// previous result, so listeners never see duplicates; ChordCleared
// fires once when a previously identified chord stops applying.
type Listener struct {
	ChordIdentified func(model.Chord, []model.ActiveNote)
	ChordCleared    func([]model.ActiveNote)
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithIdentifier overrides the default partial-match identifier.
func WithIdentifier(id *identify.Identifier) Option {
	return func(r *Recognizer) { r.id = id }
}

// WithTracker overrides the default tracker, e.g. one built with
// tracker.MatchAnyChannel.
func WithTracker(t *tracker.Tracker) Option {
	return func(r *Recognizer) { r.notes = t }
}

// Recognizer is not safe for concurrent use; feed it from a single
// goroutine, the same way its decoder and tracker demand.
type Recognizer struct {
	dec   *decoder.Decoder
	notes *tracker.Tracker
	id    *identify.Identifier
	last  *model.Chord

	listeners map[uuid.UUID]Listener
	order     []uuid.UUID
}

func New(opts ...Option) *Recognizer {
	r := &Recognizer{
		dec:       decoder.New(),
		notes:     tracker.New(),
		id:        identify.New(),
		listeners: make(map[uuid.UUID]Listener),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.notes.Subscribe(tracker.Listener{ActiveNotesChanged: r.reidentify})
	return r
}

// Tracker exposes the underlying note tracker so callers can observe
// note-level notifications or read the active set directly.
func (r *Recognizer) Tracker() *tracker.Tracker {
	return r.notes
}

// Subscribe registers a listener and returns a handle for Unsubscribe.
func (r *Recognizer) Subscribe(l Listener) uuid.UUID {
	id := uuid.New()
	r.listeners[id] = l
	r.order = append(r.order, id)
	return id
}

func (r *Recognizer) Unsubscribe(id uuid.UUID) {
	if _, ok := r.listeners[id]; !ok {
		return
	}
	delete(r.listeners, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Feed decodes one transport delivery and runs it through the
// pipeline. Undecodable byte spans are silently skipped.
func (r *Recognizer) Feed(buf []byte, offset, length int, timestampMS int32) {
	ev, ok := r.dec.Decode(buf, offset, length, timestampMS)
	if !ok {
		return
	}
	r.notes.OnEvent(ev)
}

// FeedEvent bypasses the decoder for already-decoded events.
func (r *Recognizer) FeedEvent(ev model.Event) {
	r.notes.OnEvent(ev)
}

// Current returns the most recently identified chord, if any still
// applies.
func (r *Recognizer) Current() (model.Chord, bool) {
	if r.last == nil {
		return model.Chord{}, false
	}
	return *r.last, true
}

func (r *Recognizer) reidentify(snapshot []model.ActiveNote) {
	c, ok := r.id.Identify(snapshot)
	switch {
	case ok && (r.last == nil || !r.last.Equal(c)):
		r.last = &c
		r.notifyIdentified(c, snapshot)
	case !ok && r.last != nil:
		r.last = nil
		r.notifyCleared(snapshot)
	}
}

func (r *Recognizer) notifyIdentified(c model.Chord, snapshot []model.ActiveNote) {
	for _, id := range r.order {
		if l, ok := r.listeners[id]; ok && l.ChordIdentified != nil {
			safeNotify(func() { l.ChordIdentified(c, snapshot) })
		}
	}
}

func (r *Recognizer) notifyCleared(snapshot []model.ActiveNote) {
	for _, id := range r.order {
		if l, ok := r.listeners[id]; ok && l.ChordCleared != nil {
			safeNotify(func() { l.ChordCleared(snapshot) })
		}
	}
}

func safeNotify(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
