// Package employees implements the validation rules and store operations
// for employee records, independent of any user interface.
package employees

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/staffbook/pkg/types"
)

// FormInput carries the raw field texts of the entry form. Values stay
// untyped until ParseRecord or ParseID runs; flag values from the CLI enter
// through the same path so the validation contract has a single source.
type FormInput struct {
	ID     string
	Name   string
	Salary string
}

// Clear resets all fields to empty text.
func (f *FormInput) Clear() {
	f.ID = ""
	f.Name = ""
	f.Salary = ""
}

// IsEmpty reports whether every field is empty.
func (f FormInput) IsEmpty() bool {
	return f.ID == "" && f.Name == "" && f.Salary == ""
}

// FromRecord overwrites the fields with a record's display text, replacing
// whatever was previously typed. Used when the user selects a listed row.
func (f *FormInput) FromRecord(e types.Employee) {
	f.ID = strconv.Itoa(e.ID)
	f.Name = e.Name
	f.Salary = strconv.Itoa(e.Salary)
}

// ParseRecord validates the form fields and converts them to an Employee.
// ID and Salary must both parse as integers, checked together before the
// name; Name must be non-empty. Failures wrap ErrInvalidInput and abort
// before any store access.
func ParseRecord(in FormInput) (types.Employee, error) {
	id, idErr := strconv.Atoi(strings.TrimSpace(in.ID))
	salary, salaryErr := strconv.Atoi(strings.TrimSpace(in.Salary))
	if idErr != nil || salaryErr != nil {
		return types.Employee{}, fmt.Errorf("%w: ID and Salary must be integers", types.ErrInvalidInput)
	}
	if in.Name == "" {
		return types.Employee{}, fmt.Errorf("%w: Name field cannot be empty", types.ErrInvalidInput)
	}
	return types.Employee{ID: id, Name: in.Name, Salary: salary}, nil
}

// ParseID validates the ID field alone, for operations that need no name or
// salary. Failure wraps ErrInvalidInput.
func ParseID(text string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: ID must be an integer", types.ErrInvalidInput)
	}
	return id, nil
}
