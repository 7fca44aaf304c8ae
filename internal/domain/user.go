package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = RegisterValidations(validatorInstance)
}

// RegisterValidations adds the custom tags used by userdesk structs to v.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects empty and whitespace-only strings.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// UserID is the server-assigned identity of a user record. The endpoint may
// encode it as a JSON number or a JSON string; both are kept as text.
type UserID string

// UnmarshalJSON accepts numeric and string identities.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("user id must be a number or a string")
	}
	*id = UserID(n.String())
	return nil
}

// String returns the identity as rendered to the operator.
func (id UserID) String() string {
	return string(id)
}

// User is one record of the remote collection. The client never owns an
// authoritative copy; every value here is a snapshot from the last fetch.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserList is the envelope returned by GET /users.
type UserList struct {
	Users []User `json:"users"`
}

// UserInput is the body of create and update requests.
type UserInput struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
}

// Validate checks that both fields carry text. The email format is left to
// the server.
func (in UserInput) Validate() error {
	err := validatorInstance.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: strings.ToLower(verrs[0].Field()), Message: "Please fill in all fields"}
	}
	return err
}
