// FILE: internal/controller/moderator_controller.go
package controller

import (
	"strconv"

	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IModeratorController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
	SetPlan(ctx *fiber.Ctx) error
	ResetUsage(ctx *fiber.Ctx) error
	ListTickets(ctx *fiber.Ctx) error
	ReplyTicket(ctx *fiber.Ctx) error
	ResolveTicket(ctx *fiber.Ctx) error
	CloseTicket(ctx *fiber.Ctx) error
	PendingTransactions(ctx *fiber.Ctx) error
	ReviewTransaction(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type moderatorController struct {
	moderatorService service.IModeratorService
	ticketService    service.ITicketService
	billingService   service.IBillingService
}

func NewModeratorController(
	moderatorService service.IModeratorService,
	ticketService service.ITicketService,
	billingService service.IBillingService,
) IModeratorController {
	return &moderatorController{
		moderatorService: moderatorService,
		ticketService:    ticketService,
		billingService:   billingService,
	}
}

func (c *moderatorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/moderator")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.ModeratorOnly)

	h.Get("/stats", c.Stats)
	h.Get("/users", c.ListUsers)
	h.Post("/users/plan", c.SetPlan)
	h.Post("/users/usage/reset", c.ResetUsage)
	h.Get("/tickets", c.ListTickets)
	h.Post("/tickets/:id/reply", c.ReplyTicket)
	h.Post("/tickets/:id/resolve", c.ResolveTicket)
	h.Post("/tickets/:id/close", c.CloseTicket)
	h.Get("/transactions/pending", c.PendingTransactions)
	h.Post("/transactions/:id/review", c.ReviewTransaction)
	h.Get("/logs", c.Logs)
}

func (c *moderatorController) Stats(ctx *fiber.Ctx) error {
	res, err := c.moderatorService.Stats(ctx.Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard stats", res))
}

func (c *moderatorController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.moderatorService.ListUsers(ctx.Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User directory", res))
}

func (c *moderatorController) SetPlan(ctx *fiber.Ctx) error {
	var req dto.SetPlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.moderatorService.SetPlan(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *moderatorController) ResetUsage(ctx *fiber.Ctx) error {
	var req dto.ResetUsageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.moderatorService.ResetUsage(ctx.Context(), req.Email)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage counters reset", res))
}

func (c *moderatorController) ListTickets(ctx *fiber.Ctx) error {
	res, err := c.ticketService.ListAll(ctx.Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("All tickets", res))
}

func (c *moderatorController) ReplyTicket(ctx *fiber.Ctx) error {
	var req dto.TicketReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.ticketService.Reply(ctx.Context(), sessionEmail(ctx), true, ctx.Params("id"), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply sent", res))
}

func (c *moderatorController) ResolveTicket(ctx *fiber.Ctx) error {
	res, err := c.ticketService.Resolve(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ticket resolved", res))
}

func (c *moderatorController) CloseTicket(ctx *fiber.Ctx) error {
	if err := c.ticketService.Close(ctx.Context(), sessionEmail(ctx), true, ctx.Params("id")); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Ticket closed", nil))
}

func (c *moderatorController) PendingTransactions(ctx *fiber.Ctx) error {
	res, err := c.billingService.ListPending(ctx.Context())
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending transactions", res))
}

func (c *moderatorController) ReviewTransaction(ctx *fiber.Ctx) error {
	txnId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid transaction ID"))
	}

	var req dto.ReviewTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.billingService.Review(ctx.Context(), sessionEmail(ctx), txnId, req.Action)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Transaction reviewed", res))
}

func (c *moderatorController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "all")
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	res, err := c.moderatorService.Logs(level, limit, offset)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Server logs", res))
}
