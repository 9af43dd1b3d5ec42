// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
	}

	tokenId, _ := claims["jti"].(string)
	email, _ := claims["email"].(string)
	moderator, _ := claims["moderator"].(bool)

	ctx.Locals("token_id", tokenId)
	ctx.Locals("email", email)
	ctx.Locals("moderator", moderator)
	return ctx.Next()
}

// ModeratorOnly gate, must run after JwtMiddleware.
func ModeratorOnly(ctx *fiber.Ctx) error {
	if moderator, ok := ctx.Locals("moderator").(bool); !ok || !moderator {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Moderator access required"))
	}
	return ctx.Next()
}
