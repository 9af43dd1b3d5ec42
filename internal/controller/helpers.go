// FILE: internal/controller/helpers.go
package controller

import (
	"errors"

	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail maps service errors onto the response envelope.
func fail(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidRecoveryKey),
		errors.Is(err, service.ErrSessionExpired):
		code = fiber.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner):
		code = fiber.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTicketNotFound),
		errors.Is(err, service.ErrTxnNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrTxnAlreadyDone),
		errors.Is(err, service.ErrTicketClosed):
		code = fiber.StatusConflict
	case errors.Is(err, service.ErrPremiumRequired):
		code = fiber.StatusPaymentRequired
	case errors.Is(err, service.ErrQuotaExceeded):
		code = fiber.StatusTooManyRequests
	case errors.Is(err, service.ErrGatewayDisabled):
		code = fiber.StatusServiceUnavailable
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}

func sessionEmail(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals("email").(string)
	return email
}

func sessionTokenId(ctx *fiber.Ctx) string {
	tokenId, _ := ctx.Locals("token_id").(string)
	return tokenId
}

func sessionIsModerator(ctx *fiber.Ctx) bool {
	moderator, _ := ctx.Locals("moderator").(bool)
	return moderator
}
