// FILE: internal/controller/auth_controller.go
package controller

import (
	"radiant-system-be/internal/dto"
	"radiant-system-be/internal/pkg/serverutils"
	"radiant-system-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	RecoveryReset(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Post("/recovery-reset", c.RecoveryReset)

	h.Get("/session", serverutils.JwtMiddleware, c.Session)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Account created. Store your recovery key safely.", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) RecoveryReset(ctx *fiber.Ctx) error {
	var req dto.RecoveryResetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	if err := c.service.ResetWithRecoveryKey(ctx.Context(), &req); err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset. A new recovery key was mailed to you.", nil))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	session, err := c.service.CurrentSession(ctx.Context(), sessionTokenId(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	profile := dto.ProfileDTO{
		Email:       session.Email,
		FullName:    session.FullName,
		AvatarURL:   session.AvatarURL,
		Plan:        string(session.Plan),
		IsPremium:   session.IsPremium(),
		IsModerator: session.IsModerator,
		UsageStats:  session.UsageStats,
		JoinedAt:    session.JoinedAt,
	}
	return ctx.JSON(serverutils.SuccessResponse("Active session", profile))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.service.Logout(sessionTokenId(ctx))
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
