package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"employeeapi/internal/model"
	"employeeapi/internal/service"
)

// CreateEmployee stores a new employee.
//
// @Summary Create employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body model.EmployeeRequest true "Employee"
// @Success 201 {object} model.EmployeeResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /employees [post]
func CreateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseRequest(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, model.ErrorCodeMalformedRequestBody, "malformed request body")
		}

		res, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// UpdateEmployee applies the non-blank fields of the body to an employee.
//
// @Summary Partially update employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body model.EmployeeRequest true "Fields to change"
// @Success 200 {object} model.EmployeeResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /employees/{id} [patch]
func UpdateEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseRequest(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, model.ErrorCodeMalformedRequestBody, "malformed request body")
		}

		res, err := svc.Update(c.UserContext(), pathID(c), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetEmployee returns one employee by id.
//
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} model.EmployeeResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /employees/{id} [get]
func GetEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Get(c.UserContext(), pathID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListEmployees returns every stored employee.
//
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} model.EmployeeResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /employees [get]
func ListEmployees(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := make([]*model.EmployeeResponse, 0)
		for res, err := range svc.List(c.UserContext()) {
			if err != nil {
				return writeServiceError(c, err)
			}
			items = append(items, res)
		}
		return c.JSON(items)
	}
}

// DeleteEmployee removes an employee.
//
// @Summary Delete employee
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} model.ErrorResponse
// @Failure 503 {object} model.ErrorResponse
// @Router /employees/{id} [delete]
func DeleteEmployee(svc service.EmployeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), pathID(c)); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// parseRequest decodes the JSON body. An empty or null body yields a nil
// request, which the service rejects as a missing argument.
func parseRequest(c *fiber.Ctx) (*model.EmployeeRequest, error) {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	var req model.EmployeeRequest
	if err := c.App().Config().JSONDecoder(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// pathID returns the :id route parameter. Params point into the pooled
// request buffer, and the id outlives the request in exported spans.
func pathID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}
