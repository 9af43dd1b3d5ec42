// FILE: internal/controller/ticket_controller.go
package controller

import (
	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITicketController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	Close(ctx *fiber.Ctx) error
}

type ticketController struct {
	ticketService service.ITicketService
	authService   service.IAuthService
}

func NewTicketController(ticketService service.ITicketService, authService service.IAuthService) ITicketController {
	return &ticketController{
		ticketService: ticketService,
		authService:   authService,
	}
}

func (c *ticketController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tickets")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Open)
	h.Get("", c.ListMine)
	h.Post("/:id/reply", c.Reply)
	h.Post("/:id/close", c.Close)
}

func (c *ticketController) Open(ctx *fiber.Ctx) error {
	var req dto.OpenTicketRequest
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

	res, err := c.ticketService.Open(ctx.Context(), email, profile.FullName, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket opened", res))
}

func (c *ticketController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.ticketService.ListMine(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("My tickets", res))
}

func (c *ticketController) Reply(ctx *fiber.Ctx) error {
	var req dto.TicketReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.ticketService.Reply(ctx.Context(), sessionEmail(ctx), false, ctx.Params("id"), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply sent", res))
}

func (c *ticketController) Close(ctx *fiber.Ctx) error {
	if err := c.ticketService.Close(ctx.Context(), sessionEmail(ctx), false, ctx.Params("id")); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Ticket closed", nil))
}
