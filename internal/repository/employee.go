package repository

import (
	"context"
	"iter"

	"employeeapi/internal/model"
)

// EmployeeRepository is the persistence port for employees.
// No business logic here, strictly persistence operations.
type EmployeeRepository interface {
	// Insert stores a new employee and returns it with a freshly assigned id.
	Insert(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// FindByID returns the employee with the given id, or nil and no error
	// when it does not exist.
	FindByID(ctx context.Context, id string) (*model.Employee, error)

	// Save overwrites the stored version of an employee that already has an id.
	Save(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// DeleteByID removes an employee. It returns nil if the record did not exist.
	DeleteByID(ctx context.Context, id string) error

	// FindAll lazily yields every stored employee. Each range over the
	// returned sequence queries the store again. Order is not guaranteed.
	FindAll(ctx context.Context) iter.Seq2[*model.Employee, error]
}
