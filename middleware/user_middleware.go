package middleware

import (
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	"slices"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

// GetUserCompany компания HR специалиста, пусто для кандидатов и администраторов
func GetUserCompany(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if company, ok := claims["company"].(string); ok {
		return company
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, ok := claims["role"].(string); ok && role != "" {
		return models.UserRole(role)
	}
	return ""
}

func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !slices.Contains(roles, GetUserRole(ctx)) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func AdminRequired() fiber.Handler {
	return RoleRequired(models.AdminRole)
}

// CompanyRequired доступ сотрудникам, привязанным к компании
func CompanyRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !GetUserRole(ctx).IsStaff() || GetUserCompany(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("пользователь не привязан к компании"))
		}
		return ctx.Next()
	}
}
