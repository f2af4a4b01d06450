package mocks

import (
	"context"
	"iter"

	"employeeapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindAll(ctx context.Context) iter.Seq2[*model.Employee, error] {
	args := m.Called(ctx)
	return args.Get(0).(iter.Seq2[*model.Employee, error])
}

// Seq returns a sequence yielding the given employees, then err if non-nil.
func Seq(err error, emps ...*model.Employee) iter.Seq2[*model.Employee, error] {
	return func(yield func(*model.Employee, error) bool) {
		for _, e := range emps {
			if !yield(e, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}
