// Package mapper converts between transfer objects and the employee entity.
package mapper

import "employeeapi/internal/model"

// ToEntity builds a not-yet-stored Employee from a request.
// Fields are copied as given; nil fields become empty strings.
func ToEntity(req *model.EmployeeRequest) (*model.Employee, error) {
	if req == nil {
		return nil, model.InvalidArgument("employee request must not be nil")
	}
	return model.NewEmployee("", deref(req.FirstName), deref(req.LastName), deref(req.Email)), nil
}

// ToResponse snapshots an Employee into its wire shape.
func ToResponse(e *model.Employee) (*model.EmployeeResponse, error) {
	if e == nil {
		return nil, model.InvalidArgument("employee must not be nil")
	}
	return &model.EmployeeResponse{
		ID:        e.ID(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		Email:     e.Email(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
