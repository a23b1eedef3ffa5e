package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidID is returned when an identifier in a payload is neither a JSON string nor a JSON number.
var ErrInvalidID = errors.New("invalid employee id")

// EmployeeID is the identifier assigned by the backend. Backends may send it either as a
// string or as a number; it is always kept in its string form.
type EmployeeID string

// UnmarshalJSON accepts both `"42"` and `42`.
func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidID, err)
		}
		*id = EmployeeID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}
	*id = EmployeeID(num.String())

	return nil
}

func (id EmployeeID) String() string {
	return string(id)
}

// Employee represents an employee record as served by the backend.
type Employee struct {
	ID    EmployeeID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  string     `json:"role"`
}

// EmployeeInput is the body of create and update calls.
type EmployeeInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Input returns the editable fields of the employee.
func (e Employee) Input() EmployeeInput {
	return EmployeeInput{Name: e.Name, Email: e.Email, Role: e.Role}
}
