package model

import "strings"

// Employee is the persisted employee record.
// The identifier is assigned by the store on insertion and has no setter;
// the text fields change only through the blank-checked setters below.
type Employee struct {
	id        string
	firstName string
	lastName  string
	email     string
}

// NewEmployee builds an Employee from its four fields. The id is empty for
// records that have not been inserted yet.
func NewEmployee(id, firstName, lastName, email string) *Employee {
	return &Employee{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
	}
}

func (e *Employee) ID() string        { return e.id }
func (e *Employee) FirstName() string { return e.firstName }
func (e *Employee) LastName() string  { return e.lastName }
func (e *Employee) Email() string     { return e.email }

// SetFirstName replaces the first name unless v is nil or blank.
func (e *Employee) SetFirstName(v *string) {
	if present(v) {
		e.firstName = *v
	}
}

// SetLastName replaces the last name unless v is nil or blank.
func (e *Employee) SetLastName(v *string) {
	if present(v) {
		e.lastName = *v
	}
}

// SetEmail replaces the email unless v is nil or blank.
func (e *Employee) SetEmail(v *string) {
	if present(v) {
		e.email = *v
	}
}

func present(v *string) bool {
	return v != nil && strings.TrimSpace(*v) != ""
}
