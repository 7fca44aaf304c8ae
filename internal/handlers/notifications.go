package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/userdesk/internal/middleware"
	"github.com/nfrund/userdesk/internal/notify"
	"github.com/nfrund/userdesk/internal/pubsub"
	"github.com/nfrund/userdesk/internal/rendering"
	"github.com/nfrund/userdesk/internal/view"
)

// NotificationsHandler serves the notification region.
type NotificationsHandler struct {
	center     *notify.Center
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	origins    []string
}

// NotificationsOption customises a NotificationsHandler.
type NotificationsOption func(*NotificationsHandler)

// WithOriginPatterns accepts websocket handshakes from the given origin host
// patterns in addition to the page's own origin.
func WithOriginPatterns(patterns ...string) NotificationsOption {
	return func(h *NotificationsHandler) {
		h.origins = patterns
	}
}

// NewNotificationsHandler creates a NotificationsHandler. The stream only
// accepts same-origin handshakes unless WithOriginPatterns is given.
func NewNotificationsHandler(center *notify.Center, subscriber pubsub.Subscriber, renderer rendering.Renderer, opts ...NotificationsOption) *NotificationsHandler {
	h := &NotificationsHandler{center: center, subscriber: subscriber, renderer: renderer}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// List renders the whole region.
func (h *NotificationsHandler) List(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, view.NotificationRegion(h.center.Active(), h.center.TTL()))
}

// Dismiss removes one notification. The empty 200 body lets htmx swap the
// item out; dismissing one that is already gone is not an error.
func (h *NotificationsHandler) Dismiss(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}
	h.center.Dismiss(c.Request().Context(), id)
	return c.HTML(http.StatusOK, "")
}

// Stream pushes out-of-band removals to the browser when a notification's
// timer dismisses it on the server.
func (h *NotificationsHandler) Stream(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "Internal server error")

	logger := middleware.FromContext(c.Request().Context())
	// The browser never sends anything; CloseRead ends ctx when it leaves.
	ctx := conn.CloseRead(c.Request().Context())

	err = h.subscriber.Subscribe(ctx, notify.TopicChanged, func(_ context.Context, msg pubsub.Message) error {
		var ev notify.Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			logger.Warn("Dropping malformed notification event", "error", err)
			return nil
		}
		if ev.Kind != "dismissed" {
			return nil
		}
		frame, err := h.renderer.RenderComponent(ctx, view.NotificationRemoved(ev.ID.String()))
		if err != nil {
			logger.Error("Failed to render notification removal", "error", err)
			return nil
		}
		if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
			logger.Debug("Notification stream write failed", "error", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	return conn.Close(websocket.StatusNormalClosure, "")
}
