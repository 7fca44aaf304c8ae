package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter lets a gomponents.Node render inside a templ
// component such as Layout.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter lets a templ.Component render inside a gomponents
// tree, e.g. a custom NotificationRenderer.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. gomponents passes no context, so the
// component renders with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent wraps component as a gomponents.Node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
