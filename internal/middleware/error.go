package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/apodego/apode/internal/logging"
	"github.com/apodego/apode/internal/models"
	"github.com/apodego/apode/internal/services"
)

// StatusForCode maps a service error code to an HTTP status
func StatusForCode(code string) int {
	switch code {
	case services.CodeUnknownMeasure, services.CodeDatasetNotFound, services.CodeColumnNotFound:
		return fiber.StatusNotFound
	case services.CodeOutOfRange, services.CodeEmptySample, services.CodeDomainError,
		services.CodeInvalidOption, services.CodeInvalidRequest:
		return fiber.StatusBadRequest
	case services.CodeDatasetLoadError:
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// codeForStatus names plain fiber errors
func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return services.CodeInvalidRequest
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	}
	return "ERROR"
}

// ErrorHandler returns a custom error handler middleware. Service errors keep
// their code and details; fiber errors keep their status.
func ErrorHandler(logger *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		detail := models.ErrorDetail{
			Code:    "ERROR",
			Message: "Internal Server Error",
		}

		var svcErr *services.ServiceError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &svcErr):
			status = StatusForCode(svcErr.Code)
			detail = models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			}
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			detail.Code = codeForStatus(fiberErr.Code)
			detail.Message = fiberErr.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("Request error",
				"path", c.Path(),
				"method", c.Method(),
				"status", status,
				"error", err,
			)
		} else {
			logger.Debug("Request rejected",
				"path", c.Path(),
				"method", c.Method(),
				"status", status,
				"code", detail.Code,
			)
		}

		detail.Path = c.Path()
		return c.Status(status).JSON(models.ErrorResponse{Error: detail})
	}
}
