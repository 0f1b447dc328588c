package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/sicko7947/claimflow"
)

// statusFor maps a command error to an HTTP status code
func statusFor(err error) int {
	switch claimflow.ErrorCode(err) {
	case claimflow.ErrCodeClaimAlreadyExists, claimflow.ErrCodeClaimAlreadyApproved:
		return fiber.StatusConflict
	case claimflow.ErrCodeUnauthorized:
		return fiber.StatusForbidden
	case claimflow.ErrCodeInvalidIdentity, claimflow.ErrCodeInvalidInput:
		return fiber.StatusBadRequest
	case claimflow.ErrCodeInsufficientFunds:
		return fiber.StatusPaymentRequired
	case claimflow.ErrCodeUnsupported:
		return fiber.StatusNotImplemented
	case claimflow.ErrCodeStorageFailure:
		if claimflow.IsNotFound(err) {
			return fiber.StatusNotFound
		}
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// writeError renders err as {"code","message","method"}
func writeError(c fiber.Ctx, err error) error {
	body := fiber.Map{
		"code":    claimflow.ErrorCode(err),
		"message": err.Error(),
	}

	var ce *claimflow.ClaimError
	if errors.As(err, &ce) {
		body["message"] = ce.Message
		if ce.Method != "" {
			body["method"] = ce.Method
		}
		if claimflow.IsNotFound(err) {
			body["message"] = "No claim has been submitted"
		}
	} else {
		body["code"] = claimflow.ErrCodeStorageFailure
		body["message"] = "Internal error"
	}

	return c.Status(statusFor(err)).JSON(body)
}
