package handlers

import (
	"sync"

	"github.com/nfrund/userdesk/internal/console"
)

// ConsoleState is the page state shared by every request of the web
// console: forms, overlays and the diagnostic panel. The collection itself
// lives in the Synchronizer.
type ConsoleState struct {
	mu         sync.Mutex
	form       console.FormState
	createOpen bool
	editOpen   bool
	diagnostic console.Diagnostic
}

// NewConsoleState creates an empty state with both overlays closed.
func NewConsoleState() *ConsoleState {
	return &ConsoleState{}
}

// ConsoleSnapshot is a copy of ConsoleState.
type ConsoleSnapshot struct {
	Form       console.FormState
	CreateOpen bool
	EditOpen   bool
	Diagnostic console.Diagnostic
}

// Snapshot copies the current state.
func (s *ConsoleState) Snapshot() ConsoleSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ConsoleSnapshot{
		Form:       s.form,
		CreateOpen: s.createOpen,
		EditOpen:   s.editOpen,
		Diagnostic: s.diagnostic,
	}
}

// Surface returns a request-scoped surface seeded from the current state.
// Network calls run against it without holding the state lock.
func (s *ConsoleState) Surface(confirmed bool) *console.MemorySurface {
	snap := s.Snapshot()
	m := console.NewMemorySurface(true)
	m.ConfirmAnswer = confirmed
	m.Form = snap.Form
	m.Overlays[console.OverlayCreate] = snap.CreateOpen
	m.Overlays[console.OverlayEdit] = snap.EditOpen
	m.Diagnostic = snap.Diagnostic
	m.Diagnostic.ScrollIntoView = false
	return m
}

// SetCreateForm records what the operator submitted in the create form.
func (s *ConsoleState) SetCreateForm(v console.FormValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Create = v
}

// SetEditForm records what the operator submitted in the edit form.
func (s *ConsoleState) SetEditForm(id string, v console.FormValues) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.EditID = id
	s.form.Edit = v
}

// SetOverlay shows or hides an overlay.
func (s *ConsoleState) SetOverlay(o console.Overlay, open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch o {
	case console.OverlayCreate:
		s.createOpen = open
	case console.OverlayEdit:
		s.editOpen = open
	}
}

// Commit copies the regions m changed back into the shared state.
func (s *ConsoleState) Commit(m *console.MemorySurface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.Changed(console.RegionCreateOverlay) {
		s.form.Create = m.Form.Create
		s.createOpen = m.OverlayOpen(console.OverlayCreate)
	}
	if m.Changed(console.RegionEditOverlay) {
		s.form.Edit = m.Form.Edit
		s.form.EditID = m.Form.EditID
		s.editOpen = m.OverlayOpen(console.OverlayEdit)
	}
	if m.Changed(console.RegionDiagnostic) {
		s.diagnostic = m.Diagnostic
		s.diagnostic.ScrollIntoView = false
	}
}
