package forms

import (
	"sync"

	"github.com/greenaire/site/internal/ui/model"
)

// renderGate decides when a contact form snapshot has to be redrawn. Once
// closed it refuses every render, so callbacks queued before teardown cannot
// rebuild the form or bind new handlers.
type renderGate struct {
	mu       sync.Mutex
	closed   bool
	rendered bool
	last     model.ContactState
}

// admit records st and reports whether the container must be redrawn for it.
func (g *renderGate) admit(st model.ContactState) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	redraw := g.changedLocked(st)
	g.last = st
	if redraw {
		g.rendered = true
	}
	return redraw
}

// changedLocked skips plain keystrokes so the focused input is not replaced.
func (g *renderGate) changedLocked(st model.ContactState) bool {
	if !g.rendered || st.Status != g.last.Status || len(st.Errors) != len(g.last.Errors) {
		return true
	}
	for k, v := range st.Errors {
		if g.last.Errors[k] != v {
			return true
		}
	}
	return st.Status == model.StatusSuccess && st.Fields != g.last.Fields
}

func (g *renderGate) close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

func (g *renderGate) isClosed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closed
}
