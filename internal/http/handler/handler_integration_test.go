package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"employeeapi/internal/config"
	"employeeapi/internal/database"
	"employeeapi/internal/database/migration"
	"employeeapi/internal/model"
	"employeeapi/internal/repository/sqlite"
	"employeeapi/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.NewSQLite(config.SQLiteConfig{
		Path:          filepath.Join(t.TempDir(), "employees.db"),
		BusyTimeoutMs: 1000,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, migration.EnsureMigrated(context.Background(), db, migration.DialectSQLite, time.UTC, "test"))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, service.NewEmployeeService(sqlite.NewEmployeeSQLite(db)))
	return app
}

func TestEmployeeAPI_EndToEnd(t *testing.T) {
	app := newSQLiteApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/employees", nil))
	require.NoError(t, err)
	var list []model.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/employees", `{"firstName":"Grace","lastName":"Hopper","email":"grace@navy.mil"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	resp, err = app.Test(jsonRequest(http.MethodPatch, "/employees/"+created.ID, `{"email":"grace@example.com","firstName":""}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.EmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, model.EmployeeResponse{ID: created.ID, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}, updated)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/employees", nil))
	require.NoError(t, err)
	list = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []model.EmployeeResponse{updated}, list)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/employees/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/employees/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Employee not found for ID "+created.ID, body.Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
