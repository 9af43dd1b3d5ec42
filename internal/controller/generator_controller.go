// FILE: internal/controller/generator_controller.go
package controller

import (
	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGeneratorController interface {
	RegisterRoutes(r fiber.Router)
	GenerateProject(ctx *fiber.Ctx) error
	WriteGuide(ctx *fiber.Ctx) error
	Diagnose(ctx *fiber.Ctx) error
	SearchMotd(ctx *fiber.Ctx) error
	RenderSkin(ctx *fiber.Ctx) error
	AskAssistant(ctx *fiber.Ctx) error
}

type generatorController struct {
	service service.IGeneratorService
}

func NewGeneratorController(service service.IGeneratorService) IGeneratorController {
	return &generatorController{service: service}
}

func (c *generatorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/generator")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/project", c.GenerateProject)
	h.Post("/project/guide", c.WriteGuide)
	h.Post("/diagnose", c.Diagnose)
	h.Post("/motd", c.SearchMotd)
	h.Post("/skin", c.RenderSkin)
	h.Post("/assistant", c.AskAssistant)
}

func (c *generatorController) GenerateProject(ctx *fiber.Ctx) error {
	var req dto.GenerateProjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.GenerateProject(ctx.Context(), sessionEmail(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Project generated", res))
}

func (c *generatorController) WriteGuide(ctx *fiber.Ctx) error {
	var req dto.ProjectGuideRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.WriteGuide(ctx.Context(), sessionEmail(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Guide synthesized", res))
}

func (c *generatorController) Diagnose(ctx *fiber.Ctx) error {
	var req dto.DiagnoseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Diagnose(ctx.Context(), sessionEmail(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Crash diagnosis", res))
}

func (c *generatorController) SearchMotd(ctx *fiber.Ctx) error {
	var req dto.MotdSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.SearchMotd(ctx.Context(), sessionEmail(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("MOTD captured", res))
}

func (c *generatorController) RenderSkin(ctx *fiber.Ctx) error {
	var req dto.SkinRenderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.RenderSkin(ctx.Context(), sessionEmail(ctx), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Skin rendered", res))
}

func (c *generatorController) AskAssistant(ctx *fiber.Ctx) error {
	var req dto.AssistantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.AskAssistant(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Assistant answer", res))
}
