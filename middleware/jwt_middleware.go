package middleware

import (
	"recruitment-backend/config"
	authutils "recruitment-backend/lib/utils/auth-utils"
	apimodels "recruitment-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
		},
		// refresh token не дает доступа к api
		SuccessHandler: func(ctx *fiber.Ctx) error {
			if refresh, _ := authutils.GetClaims(ctx)["refresh"].(bool); refresh {
				return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("требуется авторизация"))
			}
			return ctx.Next()
		},
	})
}
