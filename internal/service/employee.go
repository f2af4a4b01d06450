package service

import (
	"context"
	"iter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"employeeapi/internal/mapper"
	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

var tracer = otel.Tracer("employeeapi/internal/service")

// EmployeeService defines the use cases for handling employees.
//
// Failures are model.ErrInvalidArgument for nil or empty inputs,
// model.ErrNotFound (as *model.NotFoundError) for unknown ids, and store
// errors (e.g. repository.ErrStoreUnavailable) returned unchanged.
type EmployeeService interface {
	// Create stores a new employee built verbatim from req.
	Create(ctx context.Context, req *model.EmployeeRequest) (*model.EmployeeResponse, error)

	// Update applies the non-blank fields of req to the employee with the given id.
	Update(ctx context.Context, id string, req *model.EmployeeRequest) (*model.EmployeeResponse, error)

	// Get returns a single employee by its ID.
	Get(ctx context.Context, id string) (*model.EmployeeResponse, error)

	// List lazily yields every stored employee. An empty store yields nothing.
	List(ctx context.Context) iter.Seq2[*model.EmployeeResponse, error]

	// Delete removes the employee with the given id.
	Delete(ctx context.Context, id string) error
}

// employeeService is a concrete implementation of EmployeeService.
// It holds no state besides the repository.
type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, req *model.EmployeeRequest) (res *model.EmployeeResponse, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Create")
	defer func() { endSpan(span, err) }()

	if req == nil {
		return nil, model.InvalidArgument("employee request must not be nil")
	}
	e, err := mapper.ToEntity(req)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Insert(ctx, e)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("employee.id", stored.ID()))
	return mapper.ToResponse(stored)
}

func (s *employeeService) Update(ctx context.Context, id string, req *model.EmployeeRequest) (res *model.EmployeeResponse, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Update", trace.WithAttributes(attribute.String("employee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return nil, model.InvalidArgument("employee id must not be empty")
	}
	if req == nil {
		return nil, model.InvalidArgument("employee request must not be nil")
	}

	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	e.SetFirstName(req.FirstName)
	e.SetLastName(req.LastName)
	e.SetEmail(req.Email)

	// A caller that gave up while we were reading must not get a write.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return nil, err
	}
	return mapper.ToResponse(saved)
}

func (s *employeeService) Get(ctx context.Context, id string) (res *model.EmployeeResponse, err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Get", trace.WithAttributes(attribute.String("employee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return nil, model.InvalidArgument("employee id must not be empty")
	}
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToResponse(e)
}

func (s *employeeService) List(ctx context.Context) iter.Seq2[*model.EmployeeResponse, error] {
	return func(yield func(*model.EmployeeResponse, error) bool) {
		ctx, span := tracer.Start(ctx, "EmployeeService.List")
		var (
			err error
			n   int
		)
		defer func() {
			span.SetAttributes(attribute.Int("employee.count", n))
			endSpan(span, err)
		}()

		for e, findErr := range s.repo.FindAll(ctx) {
			var res *model.EmployeeResponse
			if err = findErr; err == nil {
				res, err = mapper.ToResponse(e)
			}
			if err != nil {
				yield(nil, err)
				return
			}
			n++
			if !yield(res, nil) {
				return
			}
		}
	}
}

// Delete verifies the employee exists, then removes it.
func (s *employeeService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracer.Start(ctx, "EmployeeService.Delete", trace.WithAttributes(attribute.String("employee.id", id)))
	defer func() { endSpan(span, err) }()

	if id == "" {
		return model.InvalidArgument("employee id must not be empty")
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

// find loads an employee and turns absence into a NotFoundError.
func (s *employeeService) find(ctx context.Context, id string) (*model.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, &model.NotFoundError{ID: id}
	}
	return e, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
