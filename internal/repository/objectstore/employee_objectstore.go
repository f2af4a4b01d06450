// Package objectstore keeps each employee as a JSON document in an
// S3-compatible bucket under employees/{id}.json.
package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"path"
	"strings"

	"github.com/google/uuid"

	"employeeapi/internal/model"
	"employeeapi/internal/repository"
	"employeeapi/internal/storage"
)

const (
	collection  = "employees"
	contentType = "application/json"
)

// document is the persisted shape of an employee.
type document struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// EmployeeObjectStore implements repository.EmployeeRepository on storage.Storage.
type EmployeeObjectStore struct {
	store storage.Storage
	newID func() string
}

// NewEmployeeObjectStore creates a repository over an object storage client.
func NewEmployeeObjectStore(store storage.Storage) *EmployeeObjectStore {
	return &EmployeeObjectStore{store: store, newID: uuid.NewString}
}

var _ repository.EmployeeRepository = (*EmployeeObjectStore)(nil)

func objectKey(id string) string {
	return path.Join(collection, id+".json")
}

func (r *EmployeeObjectStore) Insert(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	return r.put(ctx, model.NewEmployee(r.newID(), e.FirstName(), e.LastName(), e.Email()))
}

func (r *EmployeeObjectStore) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	// Ids are opaque; anything that would escape the collection cannot exist.
	if id == "" || strings.ContainsAny(id, "/\\") {
		return nil, nil
	}
	e, err := r.load(ctx, objectKey(id))
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil
	}
	return e, err
}

func (r *EmployeeObjectStore) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	if e.ID() == "" {
		return nil, repository.ErrMissingID
	}
	return r.put(ctx, e)
}

func (r *EmployeeObjectStore) DeleteByID(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, objectKey(id)); err != nil {
		return repository.Classify(err)
	}
	return nil
}

func (r *EmployeeObjectStore) FindAll(ctx context.Context) iter.Seq2[*model.Employee, error] {
	return func(yield func(*model.Employee, error) bool) {
		for obj, err := range r.store.List(ctx, collection+"/") {
			if err != nil {
				yield(nil, repository.Classify(err))
				return
			}
			if !strings.HasSuffix(obj.Key, ".json") {
				continue
			}
			e, err := r.load(ctx, obj.Key)
			if errors.Is(err, storage.ErrObjectNotFound) {
				// Deleted between listing and reading.
				continue
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

func (r *EmployeeObjectStore) put(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	body, err := json.Marshal(document{
		ID:        e.ID(),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		Email:     e.Email(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode employee: %w", err)
	}
	_, err = r.store.Put(ctx, objectKey(e.ID()), bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: contentType,
	})
	if err != nil {
		return nil, repository.Classify(err)
	}
	return model.NewEmployee(e.ID(), e.FirstName(), e.LastName(), e.Email()), nil
}

func (r *EmployeeObjectStore) load(ctx context.Context, key string) (*model.Employee, error) {
	rc, _, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, repository.Classify(err)
	}
	defer rc.Close()

	var doc document
	if err := json.NewDecoder(rc).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return model.NewEmployee(doc.ID, doc.FirstName, doc.LastName, doc.Email), nil
}
