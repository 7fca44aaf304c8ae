package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/middleware"
	"github.com/nfrund/userdesk/internal/notify"
	"github.com/nfrund/userdesk/internal/rendering"
	"github.com/nfrund/userdesk/internal/view"
	g "maragu.dev/gomponents"
)

// UsersHandler serves the users page and the htmx command endpoints.
type UsersHandler struct {
	router       *console.Router
	state        *ConsoleState
	center       *notify.Center
	renderer     rendering.Renderer
	probes       []string
	notification view.NotificationRenderer
}

// UsersOption customises a UsersHandler.
type UsersOption func(*UsersHandler)

// WithProbes sets the endpoint paths offered as probe buttons.
func WithProbes(paths ...string) UsersOption {
	return func(h *UsersHandler) {
		h.probes = paths
	}
}

// WithNotificationRenderer replaces the notification region renderer.
func WithNotificationRenderer(r view.NotificationRenderer) UsersOption {
	return func(h *UsersHandler) {
		h.notification = r
	}
}

// NewUsersHandler creates a UsersHandler.
func NewUsersHandler(router *console.Router, state *ConsoleState, center *notify.Center, renderer rendering.Renderer, opts ...UsersOption) *UsersHandler {
	h := &UsersHandler{
		router:   router,
		state:    state,
		center:   center,
		renderer: renderer,
		probes:   []string{"/health", "/test"},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Page renders the full users page.
func (h *UsersHandler) Page(c echo.Context) error {
	snap := h.state.Snapshot()
	data := view.PageData{
		View:          h.router.Synchronizer().State(),
		Form:          snap.Form,
		CreateOpen:    snap.CreateOpen,
		EditOpen:      snap.EditOpen,
		Diagnostic:    snap.Diagnostic,
		Notifications: h.center.Active(),
		TTL:           h.center.TTL(),
		Flash:         view.GetFlashData(c),
		Probes:        h.probes,
		Renderer:      h.notification,
	}
	page := view.Layout("Users", view.AdaptGomponentToTempl(view.UsersPage(data)))
	return h.renderer.RenderPage(c, http.StatusOK, page)
}

// Table reloads the collection and renders the users region.
func (h *UsersHandler) Table(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.router.Synchronizer().Reload(ctx); err != nil {
		middleware.FromContext(ctx).Warn("Users reload failed", "error", err)
	}
	return h.renderer.RenderPage(c, http.StatusOK, view.UsersRegion(h.router.Synchronizer().State()))
}

// Action dispatches /actions/:action and answers with out-of-band fragments
// for every region the action changed.
func (h *UsersHandler) Action(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}

	action := console.Action(c.Param("action"))
	if !h.router.Handles(action) {
		return echo.NewHTTPError(http.StatusNotFound, "unknown action")
	}
	switch action {
	case console.ActionCreate:
		h.state.SetCreateForm(console.FormValues{Username: req.Username, Email: req.Email})
	case console.ActionUpdate:
		h.state.SetEditForm(req.ID, console.FormValues{Username: req.Username, Email: req.Email})
	}

	surface := h.state.Surface(req.Confirmed)
	out := h.router.Dispatch(ctx, action, req.Input(), surface)
	h.state.Commit(surface)

	if out.Err != nil && !out.Declined() {
		logger.Info("Action finished with error", "action", action, "called", out.Called, "error", out.Err)
	}

	return h.fragments(c, surface, out.Notifications)
}

// OpenCreate shows the create overlay.
func (h *UsersHandler) OpenCreate(c echo.Context) error {
	return h.toggle(c, console.OverlayCreate, true)
}

// CloseCreate hides the create overlay, keeping its fields.
func (h *UsersHandler) CloseCreate(c echo.Context) error {
	return h.toggle(c, console.OverlayCreate, false)
}

// CloseEdit hides the edit overlay.
func (h *UsersHandler) CloseEdit(c echo.Context) error {
	return h.toggle(c, console.OverlayEdit, false)
}

func (h *UsersHandler) toggle(c echo.Context, o console.Overlay, open bool) error {
	h.state.SetOverlay(o, open)
	surface := h.state.Surface(false)
	surface.Apply(c.Request().Context(), overlayEffect(o, open))
	return h.fragments(c, surface, nil)
}

func overlayEffect(o console.Overlay, open bool) console.Effect {
	if open {
		return console.OpenOverlay{Overlay: o}
	}
	return console.CloseOverlay{Overlay: o}
}

// fragments renders the regions m changed plus pushed, the notifications
// raised by this request in push order.
func (h *UsersHandler) fragments(c echo.Context, m *console.MemorySurface, pushed []notify.Notification) error {
	var nodes g.Group
	if m.Changed(console.RegionTable) {
		nodes = append(nodes, view.UsersRegionOOB(h.router.Synchronizer().State()))
	}
	if m.Changed(console.RegionCreateOverlay) {
		nodes = append(nodes, view.CreateOverlay(m.OverlayOpen(console.OverlayCreate), m.Form.Create, true))
	}
	if m.Changed(console.RegionEditOverlay) {
		nodes = append(nodes, view.EditOverlay(m.OverlayOpen(console.OverlayEdit), m.Form.EditID, m.Form.Edit, true))
	}
	if m.Changed(console.RegionDiagnostic) {
		nodes = append(nodes, view.DiagnosticPanel(m.Diagnostic, true))
	}
	if m.Changed(console.RegionBlocking) {
		nodes = append(nodes, view.BlockingRegion(m.Blocking, true))
	}
	if m.Redirect != nil {
		nodes = append(nodes, view.RedirectRegion(m.Redirect.Path, m.Redirect.Delay, true))
	}
	if len(pushed) > 0 {
		nodes = append(nodes, view.NotificationsPrepend(newestFirst(pushed), h.center.TTL()))
	}
	return h.renderer.RenderPage(c, http.StatusOK, nodes)
}

func newestFirst(in []notify.Notification) []notify.Notification {
	out := make([]notify.Notification, len(in))
	for i, n := range in {
		out[len(in)-1-i] = n
	}
	return out
}
