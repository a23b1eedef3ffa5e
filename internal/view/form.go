package view

import "github.com/UnknownOlympus/employee-directory/internal/models"

// Mode tells whether submitting the form adds a new employee or updates an existing one.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeUpdate Mode = "update"
)

// Form holds the values typed into the add/edit form.
type Form struct {
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	EditingID models.EmployeeID `json:"editingId,omitempty"`
}

// Edit loads employee into the form and switches to update mode.
func (f *Form) Edit(employee models.Employee) {
	f.Name = employee.Name
	f.Email = employee.Email
	f.Role = employee.Role
	f.EditingID = employee.ID
}

// Set replaces the field values, keeping the edit target.
func (f *Form) Set(input models.EmployeeInput) {
	f.Name = input.Name
	f.Email = input.Email
	f.Role = input.Role
}

// Clear empties every field and leaves update mode.
func (f *Form) Clear() {
	*f = Form{}
}

// Mode is ModeUpdate while an employee is being edited.
func (f Form) Mode() Mode {
	if f.EditingID != "" {
		return ModeUpdate
	}
	return ModeAdd
}

// SubmitLabel is the caption of the submit button for the current mode.
func (f Form) SubmitLabel() string {
	if f.Mode() == ModeUpdate {
		return "Update Employee"
	}
	return "Add Employee"
}

// Input returns the typed values as a create/update body.
func (f Form) Input() models.EmployeeInput {
	return models.EmployeeInput{Name: f.Name, Email: f.Email, Role: f.Role}
}
