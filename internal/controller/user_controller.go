// FILE: internal/controller/user_controller.go
package controller

import (
	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Profile(ctx *fiber.Ctx) error
	Usage(ctx *fiber.Ctx) error
}

type userController struct {
	authService  service.IAuthService
	quotaService service.IQuotaService
}

func NewUserController(authService service.IAuthService, quotaService service.IQuotaService) IUserController {
	return &userController{
		authService:  authService,
		quotaService: quotaService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/profile", c.Profile)
	h.Get("/usage", c.Usage)
}

func (c *userController) Profile(ctx *fiber.Ctx) error {
	profile, err := c.authService.Profile(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", profile))
}

func (c *userController) Usage(ctx *fiber.Ctx) error {
	user, limit, err := c.quotaService.Usage(ctx.Context(), sessionEmail(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	res := dto.UsageResponse{
		Plan:      string(user.Plan),
		Limit:     limit,
		Unlimited: limit == entity.UnlimitedUses,
		Usage:     user.UsageStats,
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage counters", res))
}
