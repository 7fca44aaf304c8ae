package console

import (
	"github.com/nfrund/userdesk/internal/domain"
)

// Action names one operator intent.
type Action string

const (
	ActionCreate Action = "create"
	ActionGet    Action = "get"
	ActionEdit   Action = "edit"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionProbe  Action = "probe"
)

// Overlay names a modal surface.
type Overlay string

const (
	OverlayCreate Overlay = "create"
	OverlayEdit   Overlay = "edit"
)

// Effect is a UI change requested by a plan.
type Effect interface {
	isEffect()
}

// Notify raises a transient notification.
type Notify struct {
	Severity domain.Severity
	Message  string
}

// ClearCreateForm empties the create form fields.
type ClearCreateForm struct{}

// ClearEditForm empties the edit form and forgets the record it targeted.
type ClearEditForm struct{}

// OpenOverlay shows an overlay.
type OpenOverlay struct {
	Overlay Overlay
}

// CloseOverlay hides an overlay.
type CloseOverlay struct {
	Overlay Overlay
}

// PopulateEditForm fills the edit form with a row's last-known values.
type PopulateEditForm struct {
	User domain.User
}

// Reload refetches and rerenders the whole collection. With OnlyIfTable the
// reload is skipped on surfaces that show no table.
type Reload struct {
	OnlyIfTable bool
}

// ShowDiagnostic writes text into the diagnostic panel, makes it visible and
// scrolls it into view.
type ShowDiagnostic struct {
	Text string
}

// BlockingNotice is a message the operator must acknowledge.
type BlockingNotice struct {
	Message string
}

func (Notify) isEffect()           {}
func (ClearCreateForm) isEffect()  {}
func (ClearEditForm) isEffect()    {}
func (OpenOverlay) isEffect()      {}
func (CloseOverlay) isEffect()     {}
func (PopulateEditForm) isEffect() {}
func (Reload) isEffect()           {}
func (ShowDiagnostic) isEffect()   {}
func (BlockingNotice) isEffect()   {}
