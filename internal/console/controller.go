package console

import (
	"context"

	"github.com/nfrund/userdesk/internal/domain"
)

// Controller exposes one method per operator intent, bound to one surface.
type Controller struct {
	router  *Router
	surface Surface
}

// NewController binds router to surface.
func NewController(router *Router, surface Surface) *Controller {
	return &Controller{router: router, surface: surface}
}

// Surface returns the surface the controller drives.
func (c *Controller) Surface() Surface {
	return c.surface
}

// Create submits the create form.
func (c *Controller) Create(ctx context.Context, username, email string) Outcome {
	return c.router.Dispatch(ctx, ActionCreate, Input{Username: username, Email: email}, c.surface)
}

// ReadOne shows one record in the diagnostic panel.
func (c *Controller) ReadOne(ctx context.Context, id string) Outcome {
	return c.router.Dispatch(ctx, ActionGet, Input{ID: id}, c.surface)
}

// OpenEdit opens the edit overlay for a row.
func (c *Controller) OpenEdit(ctx context.Context, u domain.User) Outcome {
	return c.router.Dispatch(ctx, ActionEdit, Input{ID: u.ID.String(), Username: u.Username, Email: u.Email}, c.surface)
}

// Update submits the edit form for id.
func (c *Controller) Update(ctx context.Context, id, username, email string) Outcome {
	return c.router.Dispatch(ctx, ActionUpdate, Input{ID: id, Username: username, Email: email}, c.surface)
}

// Delete removes a record once the operator confirms.
func (c *Controller) Delete(ctx context.Context, id string) Outcome {
	return c.router.Dispatch(ctx, ActionDelete, Input{ID: id}, c.surface)
}

// Probe shows the payload of an arbitrary endpoint path.
func (c *Controller) Probe(ctx context.Context, path string) Outcome {
	return c.router.Dispatch(ctx, ActionProbe, Input{Path: path}, c.surface)
}

// Refresh reloads the collection outside of any action.
func (c *Controller) Refresh(ctx context.Context) error {
	if c.router.sync == nil {
		return nil
	}
	return c.router.sync.Reload(ctx)
}
