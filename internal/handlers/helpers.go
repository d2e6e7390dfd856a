package handlers

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"gamereview/internal/apperrors"
	"gamereview/internal/logger"
)

// ErrorHandler is installed on the Fiber app at construction. Handlers and
// middleware return typed errors; this is the only place they become status
// codes and response bodies.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	status := apperrors.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		logger.Log.Errorf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{"message": apperrors.Message(err)})
}

// parseID extracts the numeric path id. A non-numeric id cannot resolve to
// any row, so it reports NotFound rather than BadRequest.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperrors.New(apperrors.NotFound, "resource with ID %s not found", c.Params("id"))
	}
	return uint(id), nil
}

// parseBody decodes the JSON request body into out. An empty body is legal
// and leaves out at its zero value, which makes a bodyless PATCH a no-op.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.Wrap(apperrors.BadRequest, err, "invalid request body")
	}
	return nil
}

// checkRequired runs the validator tags over a create payload so missing
// fields are reported before anything touches the persistence layer.
func checkRequired(v *validator.Validate, payload interface{}) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(apperrors.BadRequest, err, "invalid payload")
	}
	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, e.Field())
	}
	return apperrors.New(apperrors.BadRequest, "missing or invalid fields: %s", strings.Join(fields, ", "))
}
