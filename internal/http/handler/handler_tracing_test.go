package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"employeeapi/internal/model"
	repoMocks "employeeapi/internal/repository/mocks"
	"employeeapi/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGetEmployee_SpanKeepsItsOwnID(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	mRepo := new(repoMocks.MockEmployeeRepository)
	mRepo.On("FindByID", mock.Anything, "aaaaaaaa").Return(model.NewEmployee("aaaaaaaa", "A", "B", "C"), nil)
	mRepo.On("FindByID", mock.Anything, "bbbbbbbb").Return(model.NewEmployee("bbbbbbbb", "D", "E", "F"), nil)

	app := fiber.New()
	app.Get("/employees/:id", GetEmployee(service.NewEmployeeService(mRepo)))

	for _, id := range []string{"aaaaaaaa", "bbbbbbbb"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/employees/"+id, nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var ids []string
	for _, span := range rec.Ended() {
		if span.Name() != "EmployeeService.Get" {
			continue
		}
		for _, kv := range span.Attributes() {
			if kv.Key == attribute.Key("employee.id") {
				ids = append(ids, kv.Value.AsString())
			}
		}
	}
	assert.Equal(t, []string{"aaaaaaaa", "bbbbbbbb"}, ids)
}
