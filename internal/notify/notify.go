// Package notify holds the transient notification region. Each notification
// dismisses itself after a fixed TTL, or earlier when the operator closes it.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/pubsub"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TopicChanged is published whenever the set of active notifications changes.
const TopicChanged = "notify.region.changed"

// Event is the payload published on TopicChanged.
type Event struct {
	Kind     string          `json:"kind"` // "pushed" or "dismissed"
	ID       uuid.UUID       `json:"id"`
	Severity domain.Severity `json:"severity"`
}

// Notification is one message in the region.
type Notification struct {
	ID        uuid.UUID
	Severity  domain.Severity
	Message   string
	CreatedAt time.Time
}

// Title is the severity as a heading, e.g. "Warning". A Caser is stateful,
// so one is made per call.
func (n Notification) Title() string {
	return cases.Title(language.English).String(string(n.Severity))
}

// Timer is the part of *time.Timer the center needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it through an adapter.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Center owns the active notifications, newest first.
type Center struct {
	mu        sync.Mutex
	items     []Notification
	timers    map[uuid.UUID]Timer
	ttl       time.Duration
	now       func() time.Time
	afterFunc AfterFunc
	publisher pubsub.Publisher
}

// Option customises a Center.
type Option func(*Center)

// WithPublisher announces every change on the bus.
func WithPublisher(p pubsub.Publisher) Option {
	return func(c *Center) {
		c.publisher = p
	}
}

// WithClock replaces the wall clock and timer source, for tests.
func WithClock(now func() time.Time, afterFunc AfterFunc) Option {
	return func(c *Center) {
		c.now = now
		c.afterFunc = afterFunc
	}
}

// NewCenter creates a Center whose notifications live for ttl.
func NewCenter(ttl time.Duration, opts ...Option) *Center {
	c := &Center{
		timers:    make(map[uuid.UUID]Timer),
		ttl:       ttl,
		now:       time.Now,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns how long a notification stays visible.
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Push adds a notification and starts its own dismissal timer.
func (c *Center) Push(ctx context.Context, severity domain.Severity, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Severity:  severity,
		Message:   message,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.items = append([]Notification{n}, c.items...)
	c.timers[n.ID] = c.afterFunc(c.ttl, func() {
		c.Dismiss(context.Background(), n.ID)
	})
	c.mu.Unlock()

	slog.DebugContext(ctx, "Notification pushed", "id", n.ID, "severity", severity)
	c.publish(ctx, Event{Kind: "pushed", ID: n.ID, Severity: severity})
	return n
}

// Success pushes a success notification.
func (c *Center) Success(ctx context.Context, message string) {
	c.Push(ctx, domain.SeveritySuccess, message)
}

// Warn pushes a warning notification.
func (c *Center) Warn(ctx context.Context, message string) {
	c.Push(ctx, domain.SeverityWarning, message)
}

// Danger pushes a danger notification.
func (c *Center) Danger(ctx context.Context, message string) {
	c.Push(ctx, domain.SeverityDanger, message)
}

// Dismiss removes exactly one notification. It reports false when the
// notification was already gone.
func (c *Center) Dismiss(ctx context.Context, id uuid.UUID) bool {
	c.mu.Lock()
	idx := -1
	for i, n := range c.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	removed := c.items[idx]
	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.publish(ctx, Event{Kind: "dismissed", ID: id, Severity: removed.Severity})
	return true
}

// Active returns a snapshot of the visible notifications, newest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Close stops every pending timer. Notifications already shown stay in the
// snapshot.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}

func (c *Center) publish(ctx context.Context, ev Event) {
	if c.publisher == nil {
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode notification event", "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:    TopicChanged,
		Payload:  payload,
		Metadata: map[string]string{"severity": string(ev.Severity)},
	}
	if err := c.publisher.Publish(ctx, msg); err != nil {
		slog.WarnContext(ctx, "Failed to publish notification event", "error", err)
	}
}
