package postgres

import (
	"context"
	"database/sql"
	"errors"
	"iter"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// Ids are generated by the column default.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(s scanner) (*model.Employee, error) {
	var id, firstName, lastName, email string
	if err := s.Scan(&id, &firstName, &lastName, &email); err != nil {
		return nil, err
	}
	return model.NewEmployee(id, firstName, lastName, email), nil
}

// Insert adds a new employee row and returns it with the generated id.
func (r *EmployeePostgres) Insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	const q = `
		INSERT INTO employees (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, email
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, e.FirstName(), e.LastName(), e.Email()))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// FindByID fetches a single employee by its ID.
func (r *EmployeePostgres) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	const q = `
		SELECT id, first_name, last_name, email
		FROM employees
		WHERE id = $1
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.Classify(err)
	}
	return out, nil
}

// Save upserts the employee row identified by e.ID().
func (r *EmployeePostgres) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID() == "" {
		return nil, repository.ErrMissingID
	}
	const q = `
		INSERT INTO employees (id, first_name, last_name, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name  = EXCLUDED.last_name,
		    email      = EXCLUDED.email
		RETURNING id, first_name, last_name, email
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, e.ID(), e.FirstName(), e.LastName(), e.Email()))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

// DeleteByID removes an employee by ID. It does not return an error if the row does not exist.
func (r *EmployeePostgres) DeleteByID(ctx context.Context, id string) error {
	const q = `DELETE FROM employees WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, q, id); err != nil {
		return repository.Classify(err)
	}
	return nil
}

// FindAll streams every employee row. The query runs when the sequence is ranged.
func (r *EmployeePostgres) FindAll(ctx context.Context) iter.Seq2[*model.Employee, error] {
	return func(yield func(*model.Employee, error) bool) {
		const q = `SELECT id, first_name, last_name, email FROM employees`
		rows, err := r.db.QueryContext(ctx, q)
		if err != nil {
			yield(nil, repository.Classify(err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanEmployee(rows)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, repository.Classify(err))
		}
	}
}
