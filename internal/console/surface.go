package console

import (
	"context"
	"time"

	"github.com/nfrund/userdesk/internal/credential"
)

// Confirmer is the blocking prompt capability.
type Confirmer interface {
	// Confirm asks the operator a yes/no question.
	Confirm(ctx context.Context, prompt string) bool
	// NotifyBlocking shows a message the operator must acknowledge.
	NotifyBlocking(ctx context.Context, message string)
}

// Surface is where effects land: a web page, a terminal, or a test double.
type Surface interface {
	Confirmer
	credential.Redirector
	// HasTable reports whether this surface shows the collection.
	HasTable() bool
	// Apply renders a UI effect. Notify and BlockingNotice never reach Apply.
	Apply(ctx context.Context, e Effect)
}

// Region names a part of a surface that an effect changed.
type Region string

const (
	RegionTable         Region = "table"
	RegionCreateOverlay Region = "create-overlay"
	RegionEditOverlay   Region = "edit-overlay"
	RegionDiagnostic    Region = "diagnostic"
	RegionBlocking      Region = "blocking"
	RegionRedirect      Region = "redirect"
)

// FormValues are the fields of a user form.
type FormValues struct {
	Username string
	Email    string
}

// FormState is the pending form state. It is cleared after a successful
// submission and otherwise left as the operator typed it.
type FormState struct {
	Create FormValues
	Edit   FormValues
	// EditID is the record targeted by the edit form.
	EditID string
}

// Diagnostic is the raw-payload panel.
type Diagnostic struct {
	Text    string
	Visible bool
	// ScrollIntoView asks the surface to bring the panel into view once.
	ScrollIntoView bool
}

// PendingRedirect is a redirect scheduled by the session gate.
type PendingRedirect struct {
	Path  string
	Delay time.Duration
}

// MemorySurface keeps surface state in memory and records which regions
// changed. The web surface seeds one per request; tests use it directly.
// It is not safe for concurrent use.
type MemorySurface struct {
	Table         bool
	ConfirmAnswer bool

	Form       FormState
	Overlays   map[Overlay]bool
	Diagnostic Diagnostic
	Blocking   []string
	Prompts    []string
	Redirect   *PendingRedirect
	Reloads    int

	changed map[Region]bool
}

// NewMemorySurface creates a surface; table reports whether it shows the
// collection.
func NewMemorySurface(table bool) *MemorySurface {
	return &MemorySurface{
		Table:    table,
		Overlays: make(map[Overlay]bool),
		changed:  make(map[Region]bool),
	}
}

func (m *MemorySurface) HasTable() bool { return m.Table }

// Confirm records the prompt and answers with ConfirmAnswer.
func (m *MemorySurface) Confirm(_ context.Context, prompt string) bool {
	m.Prompts = append(m.Prompts, prompt)
	return m.ConfirmAnswer
}

func (m *MemorySurface) NotifyBlocking(_ context.Context, message string) {
	m.Blocking = append(m.Blocking, message)
	m.mark(RegionBlocking)
}

func (m *MemorySurface) RedirectAfter(_ context.Context, path string, delay time.Duration) {
	m.Redirect = &PendingRedirect{Path: path, Delay: delay}
	m.mark(RegionRedirect)
}

func (m *MemorySurface) Apply(_ context.Context, e Effect) {
	switch e := e.(type) {
	case ClearCreateForm:
		m.Form.Create = FormValues{}
		m.mark(RegionCreateOverlay)
	case ClearEditForm:
		m.Form.Edit = FormValues{}
		m.Form.EditID = ""
		m.mark(RegionEditOverlay)
	case OpenOverlay:
		m.Overlays[e.Overlay] = true
		m.mark(overlayRegion(e.Overlay))
	case CloseOverlay:
		m.Overlays[e.Overlay] = false
		m.mark(overlayRegion(e.Overlay))
	case PopulateEditForm:
		m.Form.EditID = e.User.ID.String()
		m.Form.Edit = FormValues{Username: e.User.Username, Email: e.User.Email}
		m.mark(RegionEditOverlay)
	case Reload:
		m.Reloads++
		m.mark(RegionTable)
	case ShowDiagnostic:
		m.Diagnostic = Diagnostic{Text: e.Text, Visible: true, ScrollIntoView: true}
		m.mark(RegionDiagnostic)
	}
}

// Changed reports whether an effect touched region.
func (m *MemorySurface) Changed(region Region) bool {
	return m.changed[region]
}

// OverlayOpen reports whether o is shown.
func (m *MemorySurface) OverlayOpen(o Overlay) bool {
	return m.Overlays[o]
}

func (m *MemorySurface) mark(r Region) {
	if m.changed == nil {
		m.changed = make(map[Region]bool)
	}
	m.changed[r] = true
}

func overlayRegion(o Overlay) Region {
	if o == OverlayEdit {
		return RegionEditOverlay
	}
	return RegionCreateOverlay
}
