package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/domain"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator with the userdesk tags registered.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = domain.RegisterValidations(v)
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ActionRequest is the form an htmx trigger posts to /actions/:action.
// Field checks belong to the command handlers, so nothing is validated here.
type ActionRequest struct {
	ID        string `form:"id"`
	Username  string `form:"username"`
	Email     string `form:"email"`
	Path      string `form:"path"`
	Confirmed bool   `form:"confirmed"`
}

// Input converts the request to command input.
func (r ActionRequest) Input() console.Input {
	return console.Input{ID: r.ID, Username: r.Username, Email: r.Email, Path: r.Path}
}

// SessionRequest stores an operator token.
type SessionRequest struct {
	Token string `form:"token" validate:"required,notblank"`
}
