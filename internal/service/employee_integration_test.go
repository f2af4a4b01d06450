package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"employeeapi/internal/config"
	"employeeapi/internal/database"
	"employeeapi/internal/database/migration"
	"employeeapi/internal/model"
	"employeeapi/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteService(t *testing.T) EmployeeService {
	t.Helper()
	db, err := database.NewSQLite(config.SQLiteConfig{
		Path:          filepath.Join(t.TempDir(), "employees.db"),
		BusyTimeoutMs: 1000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.EnsureMigrated(context.Background(), db, migration.DialectSQLite, time.UTC, "test"))
	return NewEmployeeService(sqlite.NewEmployeeSQLite(db))
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &model.EmployeeRequest{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Email:     strPtr("ada@example.com"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, created.ID, &model.EmployeeRequest{Email: strPtr("ada@analytical.engine"), LastName: strPtr(" ")})
	require.NoError(t, err)
	assert.Equal(t, &model.EmployeeResponse{
		ID:        created.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@analytical.engine",
	}, updated)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), model.ErrNotFound)
}

func TestEmployeeService_ListMatchesCreated(t *testing.T) {
	svc := newSQLiteService(t)
	ctx := context.Background()

	want := map[string]*model.EmployeeResponse{}
	for _, name := range []string{"Ada", "Grace", "Edsger"} {
		res, err := svc.Create(ctx, &model.EmployeeRequest{FirstName: strPtr(name)})
		require.NoError(t, err)
		want[res.ID] = res
	}

	got := map[string]*model.EmployeeResponse{}
	for res, err := range svc.List(ctx) {
		require.NoError(t, err)
		got[res.ID] = res
	}
	assert.Equal(t, want, got)
}
