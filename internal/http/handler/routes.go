package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/service"
)

// Pinger is a backing store that can report whether it is reachable.
// *sql.DB and storage.Storage both satisfy it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, store Pinger, svc service.EmployeeService) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Post("/employees", CreateEmployee(svc))
	app.Get("/employees", ListEmployees(svc))
	app.Get("/employees/:id", GetEmployee(svc))
	app.Patch("/employees/:id", UpdateEmployee(svc))
	app.Delete("/employees/:id", DeleteEmployee(svc))
}
