package mocks

import (
	"context"
	"iter"

	"employeeapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Create(ctx context.Context, req *model.EmployeeRequest) (*model.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeResponse), args.Error(1)
}

func (m *MockEmployeeService) Update(ctx context.Context, id string, req *model.EmployeeRequest) (*model.EmployeeResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeResponse), args.Error(1)
}

func (m *MockEmployeeService) Get(ctx context.Context, id string) (*model.EmployeeResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeResponse), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context) iter.Seq2[*model.EmployeeResponse, error] {
	args := m.Called(ctx)
	return args.Get(0).(iter.Seq2[*model.EmployeeResponse, error])
}

func (m *MockEmployeeService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Seq returns a sequence yielding the given responses, then err if non-nil.
func Seq(err error, items ...*model.EmployeeResponse) iter.Seq2[*model.EmployeeResponse, error] {
	return func(yield func(*model.EmployeeResponse, error) bool) {
		for _, it := range items {
			if !yield(it, nil) {
				return
			}
		}
		if err != nil {
			yield(nil, err)
		}
	}
}
