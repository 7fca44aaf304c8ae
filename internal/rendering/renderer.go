package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders templ components and gomponents nodes.
type Renderer interface {
	// RenderComponent renders to bytes, for htmx fragments and websocket frames.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a full HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer renders any component type the views produce.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the shape of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage implements the Renderer interface. The component is rendered
// to a buffer first so a failure can still produce an error status.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		c.Logger().Error("Failed to render component:", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component is passed as data.
func (tr *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}
