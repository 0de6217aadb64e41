package errorhandler

import (
	"errors"

	"user-service/core/database"
	"user-service/core/logger"
	"user-service/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response is the JSON envelope returned for every failed request.
type Response struct {
	Error      string                 `json:"error"`
	Violations []validation.Violation `json:"violations,omitempty"`
}

// New returns the terminal error handler. It must be installed as
// fiber.Config.ErrorHandler so every error returned by a handler ends up here.
func New(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := Resolve(err)
		if status >= fiber.StatusInternalServerError {
			logger.WithRayID(l, c).Error("Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(status).JSON(body)
	}
}

// NotFound is mounted after every route so unmatched paths reach the error handler.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, "Cannot "+c.Method()+" "+c.Path())
}

// Resolve maps an error to its HTTP status and response body.
func Resolve(err error) (int, Response) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, Response{Error: fe.Message}
	}

	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, Response{Error: ve.Error(), Violations: ve.Violations}
	}

	var dup *database.DuplicateKeyError
	if errors.As(err, &dup) {
		return fiber.StatusConflict, Response{Error: dup.Error()}
	}
	if errors.Is(err, database.ErrDuplicateKey) {
		return fiber.StatusConflict, Response{Error: database.ErrDuplicateKey.Error()}
	}

	if errors.Is(err, database.ErrNotFound) {
		return fiber.StatusNotFound, Response{Error: database.ErrNotFound.Error()}
	}

	return fiber.StatusInternalServerError, Response{Error: "Internal Server Error"}
}
