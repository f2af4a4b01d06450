// Package sqlite implements repository.EmployeeRepository on an embedded
// SQLite database. Ids are UUIDs generated on insert.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"iter"

	"github.com/google/uuid"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

// EmployeeSQLite stores employees in the employees table of a SQLite database.
type EmployeeSQLite struct {
	db    *sql.DB
	newID func() string
}

// NewEmployeeSQLite creates a new EmployeeSQLite repository. The schema must
// already exist (see migration.EnsureMigrated).
func NewEmployeeSQLite(db *sql.DB) *EmployeeSQLite {
	return &EmployeeSQLite{db: db, newID: uuid.NewString}
}

var _ repository.EmployeeRepository = (*EmployeeSQLite)(nil)

const selectColumns = `SELECT id, first_name, last_name, email FROM employees`

func scanEmployee(s interface{ Scan(...any) error }) (*model.Employee, error) {
	var id, firstName, lastName, email string
	if err := s.Scan(&id, &firstName, &lastName, &email); err != nil {
		return nil, err
	}
	return model.NewEmployee(id, firstName, lastName, email), nil
}

func (r *EmployeeSQLite) Insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	const q = `
		INSERT INTO employees (id, first_name, last_name, email)
		VALUES (?, ?, ?, ?)
		RETURNING id, first_name, last_name, email
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, r.newID(), e.FirstName(), e.LastName(), e.Email()))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

func (r *EmployeeSQLite) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	out, err := scanEmployee(r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.Classify(err)
	}
	return out, nil
}

func (r *EmployeeSQLite) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID() == "" {
		return nil, repository.ErrMissingID
	}
	const q = `
		INSERT INTO employees (id, first_name, last_name, email)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET first_name = excluded.first_name,
		    last_name  = excluded.last_name,
		    email      = excluded.email
		RETURNING id, first_name, last_name, email
	`
	out, err := scanEmployee(r.db.QueryRowContext(ctx, q, e.ID(), e.FirstName(), e.LastName(), e.Email()))
	if err != nil {
		return nil, repository.Classify(err)
	}
	return out, nil
}

func (r *EmployeeSQLite) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id); err != nil {
		return repository.Classify(err)
	}
	return nil
}

func (r *EmployeeSQLite) FindAll(ctx context.Context) iter.Seq2[*model.Employee, error] {
	return func(yield func(*model.Employee, error) bool) {
		rows, err := r.db.QueryContext(ctx, selectColumns)
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
