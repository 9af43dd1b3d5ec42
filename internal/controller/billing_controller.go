// FILE: internal/controller/billing_controller.go
package controller

import (
	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	Plans(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type billingController struct {
	billingService service.IBillingService
	authService    service.IAuthService
}

func NewBillingController(billingService service.IBillingService, authService service.IAuthService) IBillingController {
	return &billingController{
		billingService: billingService,
		authService:    authService,
	}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing")
	h.Get("/plans", c.Plans)
	// Gateway callback authenticates via payload signature
	h.Post("/webhook/midtrans", c.Webhook)

	h.Post("/submit", serverutils.JwtMiddleware, c.Submit)
	h.Post("/checkout", serverutils.JwtMiddleware, c.Checkout)
	h.Get("/transactions", serverutils.JwtMiddleware, c.ListMine)
}

func (c *billingController) Plans(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Plan catalog", c.billingService.Catalog()))
}

func (c *billingController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	email := sessionEmail(ctx)
	profile, err := c.authService.Profile(ctx.Context(), email)
	if err != nil {
		return fail(ctx, err)
	}

	res, err := c.billingService.SubmitPayment(ctx.Context(), email, profile.FullName, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Payment submitted for review", res))
}

func (c *billingController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	email := sessionEmail(ctx)
	profile, err := c.authService.Profile(ctx.Context(), email)
	if err != nil {
		return fail(ctx, err)
	}

	res, err := c.billingService.Checkout(ctx.Context(), email, profile.FullName, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}

func (c *billingController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.billingService.ListMine(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("My transactions", res))
}

func (c *billingController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.billingService.HandleGatewayNotification(ctx.Context(), &req); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}
