package selection

import "sync"

// State is the selection toolbar state of one document
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
)

// Tracker holds at most one pending selection per document.
// Selections live only in memory, like the reading session itself.
type Tracker struct {
	mu      sync.Mutex
	pending map[uint]Selection
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{pending: make(map[uint]Selection)}
}

// Set records sel as the pending selection, replacing any previous one
func (t *Tracker) Set(documentID uint, sel Selection) {
	t.mu.Lock()
	t.pending[documentID] = sel
	t.mu.Unlock()
}

// Restore puts sel back as the pending selection unless another one was
// captured since it was taken. It reports whether sel was restored.
func (t *Tracker) Restore(documentID uint, sel Selection) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[documentID]; ok {
		return false
	}
	t.pending[documentID] = sel
	return true
}

// Clear discards the pending selection, if any
func (t *Tracker) Clear(documentID uint) {
	t.mu.Lock()
	delete(t.pending, documentID)
	t.mu.Unlock()
}

// Pending returns the pending selection without clearing it
func (t *Tracker) Pending(documentID uint) (Selection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sel, ok := t.pending[documentID]
	return sel, ok
}

// Take returns and clears the pending selection in one step
func (t *Tracker) Take(documentID uint) (Selection, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sel, ok := t.pending[documentID]
	if ok {
		delete(t.pending, documentID)
	}
	return sel, ok
}

// State reports whether a selection is awaiting confirmation
func (t *Tracker) State(documentID uint) State {
	if _, ok := t.Pending(documentID); ok {
		return StatePending
	}
	return StateIdle
}
