package console

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/userdesk/internal/domain"
	"github.com/nfrund/userdesk/internal/gateway"
)

// UsersPath is the collection endpoint.
const UsersPath = "/users"

// Operator-facing messages.
const (
	MsgFillAllFields = "Please fill in all fields"
	MsgEnterUserID   = "Please enter a user ID"
	MsgConfirmDelete = "Are you sure you want to delete this user?"
	MsgCreated       = "User created successfully!"
	MsgUpdated       = "User updated successfully!"
	MsgDeleted       = "User deleted successfully!"
)

// UserPath is the single-record endpoint for id.
func UserPath(id string) string {
	return UsersPath + "/" + url.PathEscape(id)
}

// Input carries the values an event delivers: form fields, a row identity or
// a probe path.
type Input struct {
	ID       string
	Username string
	Email    string
	Path     string
}

// Call is the endpoint request a plan wants made.
type Call struct {
	Method string
	Path   string
	Body   any
}

// Plan is the result of a command handler. When Call is nil the plan is
// resolved locally: Effects are applied and Err is reported.
type Plan struct {
	Effects   []Effect
	Err       error
	Confirm   string
	Call      *Call
	OnSuccess func(*gateway.Response) []Effect
	OnFailure func(error) []Effect
}

// Handler turns an input into a plan. Handlers do no I/O.
type Handler func(Input) Plan

// DefaultHandlers maps every action to its command handler.
func DefaultHandlers() map[Action]Handler {
	return map[Action]Handler{
		ActionCreate: PlanCreate,
		ActionGet:    PlanGet,
		ActionEdit:   PlanEdit,
		ActionUpdate: PlanUpdate,
		ActionDelete: PlanDelete,
		ActionProbe:  PlanProbe,
	}
}

// PlanCreate validates the create form and posts it. The collection is
// reloaded only where a table is shown.
func PlanCreate(in Input) Plan {
	body := domain.UserInput{Username: in.Username, Email: in.Email}
	if err := body.Validate(); err != nil {
		return Plan{
			Err:     err,
			Effects: []Effect{Notify{Severity: domain.SeverityWarning, Message: MsgFillAllFields}},
		}
	}
	return Plan{
		Call: &Call{Method: http.MethodPost, Path: UsersPath, Body: body},
		OnSuccess: func(resp *gateway.Response) []Effect {
			return []Effect{
				ShowDiagnostic{Text: resp.Pretty()},
				ClearCreateForm{},
				CloseOverlay{Overlay: OverlayCreate},
				Notify{Severity: domain.SeveritySuccess, Message: MsgCreated},
				Reload{OnlyIfTable: true},
			}
		},
		OnFailure: func(err error) []Effect {
			return []Effect{Notify{Severity: domain.SeverityDanger, Message: "Error creating user: " + err.Error()}}
		},
	}
}

// PlanGet fetches one record into the diagnostic panel.
func PlanGet(in Input) Plan {
	if strings.TrimSpace(in.ID) == "" {
		return Plan{
			Err:     &domain.ValidationError{Field: "id", Message: MsgEnterUserID},
			Effects: []Effect{BlockingNotice{Message: MsgEnterUserID}},
		}
	}
	return probe(UserPath(strings.TrimSpace(in.ID)))
}

// PlanProbe fetches an arbitrary path into the diagnostic panel.
func PlanProbe(in Input) Plan {
	return probe(in.Path)
}

func probe(path string) Plan {
	return Plan{
		Call: &Call{Method: http.MethodGet, Path: path},
		OnSuccess: func(resp *gateway.Response) []Effect {
			return []Effect{ShowDiagnostic{Text: resp.Pretty()}}
		},
		OnFailure: func(err error) []Effect {
			return []Effect{ShowDiagnostic{Text: "Error: " + err.Error()}}
		},
	}
}

// PlanEdit opens the edit overlay with the values the row supplied. Nothing
// is refetched.
func PlanEdit(in Input) Plan {
	return Plan{
		Effects: []Effect{
			PopulateEditForm{User: domain.User{ID: domain.UserID(in.ID), Username: in.Username, Email: in.Email}},
			OpenOverlay{Overlay: OverlayEdit},
		},
	}
}

// PlanUpdate puts the edit form to the record it targets. The form is
// cleared once the endpoint accepts it.
func PlanUpdate(in Input) Plan {
	body := domain.UserInput{Username: in.Username, Email: in.Email}
	return Plan{
		Call: &Call{Method: http.MethodPut, Path: UserPath(in.ID), Body: body},
		OnSuccess: func(*gateway.Response) []Effect {
			return []Effect{
				ClearEditForm{},
				CloseOverlay{Overlay: OverlayEdit},
				Reload{OnlyIfTable: true},
				Notify{Severity: domain.SeveritySuccess, Message: MsgUpdated},
			}
		},
		OnFailure: func(err error) []Effect {
			return []Effect{Notify{Severity: domain.SeverityDanger, Message: "Error updating user: " + err.Error()}}
		},
	}
}

// PlanDelete deletes a record after confirmation.
func PlanDelete(in Input) Plan {
	return Plan{
		Confirm: MsgConfirmDelete,
		Call:    &Call{Method: http.MethodDelete, Path: UserPath(in.ID)},
		OnSuccess: func(*gateway.Response) []Effect {
			return []Effect{
				Reload{OnlyIfTable: true},
				Notify{Severity: domain.SeveritySuccess, Message: MsgDeleted},
			}
		},
		OnFailure: func(err error) []Effect {
			return []Effect{Notify{Severity: domain.SeverityDanger, Message: "Error deleting user: " + err.Error()}}
		},
	}
}
