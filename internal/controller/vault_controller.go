// FILE: internal/controller/vault_controller.go
package controller

import (
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVaultController interface {
	RegisterRoutes(r fiber.Router)
	ListProjects(ctx *fiber.Ctx) error
	DeleteProject(ctx *fiber.Ctx) error
	ListSkins(ctx *fiber.Ctx) error
	DeleteSkin(ctx *fiber.Ctx) error
	ListMotds(ctx *fiber.Ctx) error
	DeleteMotd(ctx *fiber.Ctx) error
}

type vaultController struct {
	service service.IVaultService
}

func NewVaultController(service service.IVaultService) IVaultController {
	return &vaultController{service: service}
}

func (c *vaultController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/vault")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/projects/:type", c.ListProjects)
	h.Delete("/projects/:type/:id", c.DeleteProject)
	h.Get("/skins", c.ListSkins)
	h.Delete("/skins/:id", c.DeleteSkin)
	h.Get("/motds", c.ListMotds)
	h.Delete("/motds/:id", c.DeleteMotd)
}

func (c *vaultController) ListProjects(ctx *fiber.Ctx) error {
	res, err := c.service.ListProjects(ctx.Context(), sessionEmail(ctx), ctx.Params("type"))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Vault projects", res))
}

func (c *vaultController) DeleteProject(ctx *fiber.Ctx) error {
	if err := c.service.DeleteProject(ctx.Context(), sessionEmail(ctx), ctx.Params("type"), ctx.Params("id")); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Project deleted", nil))
}

func (c *vaultController) ListSkins(ctx *fiber.Ctx) error {
	res, err := c.service.ListSkins(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Skin vault", res))
}

func (c *vaultController) DeleteSkin(ctx *fiber.Ctx) error {
	if err := c.service.DeleteSkin(ctx.Context(), sessionEmail(ctx), ctx.Params("id")); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Skin deleted", nil))
}

func (c *vaultController) ListMotds(ctx *fiber.Ctx) error {
	res, err := c.service.ListMotds(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("MOTD vault", res))
}

func (c *vaultController) DeleteMotd(ctx *fiber.Ctx) error {
	if err := c.service.DeleteMotd(ctx.Context(), sessionEmail(ctx), ctx.Params("id")); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("MOTD deleted", nil))
}
