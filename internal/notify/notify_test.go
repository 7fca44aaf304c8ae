package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	fire    func()
	delay   time.Duration
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *fakeClock) now() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func (c *fakeClock) afterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{fire: f, delay: d}
	c.timers = append(c.timers, t)
	return t
}

type recordingPublisher struct {
	mu   sync.Mutex
	msgs []pubsub.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg pubsub.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestCenter_PushNewestFirst(t *testing.T) {
	clock := &fakeClock{}
	c := NewCenter(5*time.Second, WithClock(clock.now, clock.afterFunc))
	ctx := context.Background()

	c.Success(ctx, "first")
	c.Danger(ctx, "second")

	active := c.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "second", active[0].Message)
	assert.Equal(t, domain.SeverityDanger, active[0].Severity)
	assert.Equal(t, "Danger", active[0].Title())
	assert.Equal(t, "first", active[1].Message)
	assert.Equal(t, clock.now(), active[1].CreatedAt)

	for _, tm := range clock.timers {
		assert.Equal(t, 5*time.Second, tm.delay)
	}
}

func TestCenter_EachTimerRemovesOnlyItself(t *testing.T) {
	clock := &fakeClock{}
	c := NewCenter(5*time.Second, WithClock(clock.now, clock.afterFunc))
	ctx := context.Background()

	c.Warn(ctx, "a")
	c.Warn(ctx, "b")
	c.Warn(ctx, "c")
	require.Len(t, clock.timers, 3)

	// Expire "b".
	clock.timers[1].fire()

	var messages []string
	for _, n := range c.Active() {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{"c", "a"}, messages)

	// A timer firing after explicit dismissal is a no-op.
	first := c.Active()[1]
	assert.True(t, c.Dismiss(ctx, first.ID))
	assert.True(t, clock.timers[0].stopped)
	clock.timers[0].fire()
	assert.Len(t, c.Active(), 1)
}

func TestCenter_DismissUnknown(t *testing.T) {
	c := NewCenter(time.Second)
	defer c.Close()
	n := c.Push(context.Background(), domain.SeveritySuccess, "done")

	assert.True(t, c.Dismiss(context.Background(), n.ID))
	assert.False(t, c.Dismiss(context.Background(), n.ID))
}

func TestCenter_PublishesChanges(t *testing.T) {
	clock := &fakeClock{}
	pub := &recordingPublisher{}
	c := NewCenter(5*time.Second, WithClock(clock.now, clock.afterFunc), WithPublisher(pub))
	ctx := context.Background()

	n := c.Push(ctx, domain.SeveritySuccess, "User created successfully!")
	c.Dismiss(ctx, n.ID)

	require.Len(t, pub.msgs, 2)
	assert.Equal(t, TopicChanged, pub.msgs[0].Topic)
	assert.Contains(t, string(pub.msgs[0].Payload), `"kind":"pushed"`)
	assert.Contains(t, string(pub.msgs[1].Payload), `"kind":"dismissed"`)
	assert.Equal(t, "success", pub.msgs[1].Metadata["severity"])
}

func TestCenter_RealTimerExpires(t *testing.T) {
	c := NewCenter(20 * time.Millisecond)
	defer c.Close()
	c.Success(context.Background(), "gone soon")

	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, time.Second, 5*time.Millisecond)
}
