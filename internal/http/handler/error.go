package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"employeeapi/internal/http/middleware"
	"employeeapi/internal/model"
	"employeeapi/internal/repository"
)

var (
	now      = time.Now
	errorLog = log.New(os.Stderr, "", 0)
)

// writeError writes the standardized JSON error body without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code model.ErrorCode, message string) error {
	return c.Status(status).JSON(model.ErrorResponse{
		Timestamp: now().UTC(),
		Message:   message,
		ErrorCode: code,
		RequestID: middleware.GetRequestID(c),
	})
}

// writeServiceError maps a service failure to its HTTP status and error code.
// Missing arguments answer 404 like unknown ids; existing clients rely on it.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, model.ErrorCodeResourceNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidArgument):
		return writeError(c, fiber.StatusNotFound, model.ErrorCodeMissingRequiredArgument, err.Error())
	case errors.Is(err, repository.ErrStoreUnavailable), errors.Is(err, context.DeadlineExceeded):
		logServiceError(c.UserContext(), fiber.StatusServiceUnavailable, err)
		return writeError(c, fiber.StatusServiceUnavailable, model.ErrorCodeServiceUnavailable, "store unavailable")
	default:
		logServiceError(c.UserContext(), fiber.StatusInternalServerError, err)
		return writeError(c, fiber.StatusInternalServerError, model.ErrorCodeInternalError, "internal server error")
	}
}

// logServiceError records the cause that the response body hides.
func logServiceError(ctx context.Context, status int, err error) {
	b, mErr := json.Marshal(map[string]any{
		"ts":         now().UTC().Format(time.RFC3339Nano),
		"level":      "error",
		"msg":        "request_failed",
		"request_id": middleware.RequestIDFromContext(ctx),
		"status":     status,
		"error":      err.Error(),
	})
	if mErr == nil {
		errorLog.Println(string(b))
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return writeError(c, status, model.ErrorCodeMalformedRequestBody, "malformed request body")
		case fiber.StatusNotFound:
			return writeError(c, status, model.ErrorCodeResourceNotFound, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, model.ErrorCodeMethodNotAllowed, "method not allowed")
		case fiber.StatusServiceUnavailable:
			return writeError(c, status, model.ErrorCodeServiceUnavailable, "service unavailable")
		default:
			return writeError(c, status, model.ErrorCodeInternalError, "internal server error")
		}
	}
}
