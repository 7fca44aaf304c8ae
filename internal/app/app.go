// Package app wires the userdesk services together with a samber/do
// injector. Both the web server and the terminal commands build on it.
package app

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/userdesk/internal/config"
	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/gateway"
	"github.com/nfrund/userdesk/internal/notify"
	"github.com/nfrund/userdesk/internal/pubsub"
	"github.com/nfrund/userdesk/internal/rendering"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
)

// App holds the resolved services.
type App struct {
	Config   config.Provider
	Client   *gateway.Client
	Bus      *pubsub.Bus
	Center   *notify.Center
	Router   *console.Router
	Registry *prometheus.Registry
	Renderer rendering.Renderer
}

// NewContainer registers every service provider for cfg. creds is the
// credential source of the surface being built.
func NewContainer(cfg config.Provider, creds credential.Provider) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, creds)

	do.Provide(i, func(do.Injector) (*prometheus.Registry, error) {
		return prometheus.NewRegistry(), nil
	})
	do.Provide(i, func(i do.Injector) (*gateway.Metrics, error) {
		return gateway.NewMetrics(do.MustInvoke[*prometheus.Registry](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*gateway.Client, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return gateway.New(cfg.GetEndpointURL(),
			gateway.WithTimeout(cfg.GetRequestTimeout()),
			gateway.WithCredentials(do.MustInvoke[credential.Provider](i)),
			gateway.WithMetrics(do.MustInvoke[*gateway.Metrics](i)),
		)
	})
	do.Provide(i, func(do.Injector) (*pubsub.Bus, error) {
		return pubsub.NewBus(16), nil
	})
	do.Provide(i, func(i do.Injector) (*notify.Center, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return notify.NewCenter(cfg.GetNotificationTTL(),
			notify.WithPublisher(do.MustInvoke[*pubsub.Bus](i)),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*console.Synchronizer, error) {
		return console.NewSynchronizer(do.MustInvoke[*gateway.Client](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*credential.Gate, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return credential.NewGate(
			do.MustInvoke[credential.Provider](i),
			do.MustInvoke[*notify.Center](i),
			cfg.GetLoginPath(),
			cfg.GetRedirectDelay(),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*console.Router, error) {
		cfg := do.MustInvoke[config.Provider](i)
		gated, err := GatedActions(cfg.GetGatedActions())
		if err != nil {
			return nil, err
		}
		return console.NewRouter(
			do.MustInvoke[*gateway.Client](i),
			do.MustInvoke[*console.Synchronizer](i),
			do.MustInvoke[*notify.Center](i),
			console.WithGate(do.MustInvoke[*credential.Gate](i), gated...),
		), nil
	})
	do.Provide(i, func(do.Injector) (rendering.Renderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	return i
}

// New resolves every service for cfg.
func New(cfg config.Provider, creds credential.Provider) (*App, error) {
	i := NewContainer(cfg, creds)

	router, err := do.Invoke[*console.Router](i)
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	return &App{
		Config:   cfg,
		Client:   do.MustInvoke[*gateway.Client](i),
		Bus:      do.MustInvoke[*pubsub.Bus](i),
		Center:   do.MustInvoke[*notify.Center](i),
		Router:   router,
		Registry: do.MustInvoke[*prometheus.Registry](i),
		Renderer: do.MustInvoke[rendering.Renderer](i),
	}, nil
}

// Close stops notification timers and the event bus.
func (a *App) Close() error {
	a.Center.Close()
	if err := a.Bus.Close(); err != nil {
		return fmt.Errorf("failed to close event bus: %w", err)
	}
	slog.Debug("Application services closed")
	return nil
}

// GatedActions converts configured action names. Unknown names are an error
// so a typo cannot silently leave an action ungated.
func GatedActions(names []string) ([]console.Action, error) {
	known := console.DefaultHandlers()
	actions := make([]console.Action, 0, len(names))
	for _, n := range names {
		a := console.Action(n)
		if _, ok := known[a]; !ok {
			return nil, fmt.Errorf("unknown gated action %q", n)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
