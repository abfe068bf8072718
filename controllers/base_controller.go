package controllers

import (
	assessmentscoring "recruitment-backend/lib/assessment/scoring"
	"recruitment-backend/lib/recruitment"
	"recruitment-backend/lib/utils/lock"
	"recruitment-backend/middleware"
	apimodels "recruitment-backend/models/api"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(ctx.Params("id"))
	if id == "" {
		return "", errors.New("не указан идентификатор")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.WithField("path", ctx.Path()).
		WithField("method", ctx.Method())
	if requestID := ctx.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		logger = logger.WithField("request_id", requestID)
	}
	if userID := middleware.GetUserID(ctx); userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	if companyID := middleware.GetUserCompany(ctx); companyID != "" {
		logger = logger.WithField("company_id", companyID)
	}
	return logger
}

// SendError ответ с ошибкой обработчика. Текст ошибок проверки показывается пользователю,
// остальные ошибки пишутся в лог, пользователь получает message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	switch {
	case apimodels.IsNotFound(err):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, lock.ErrLockBusy):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("заявка изменяется другим пользователем, повторите попытку"))
	case recruitment.IsValidationError(err),
		errors.Is(err, assessmentscoring.ErrUnknownQuestion),
		errors.Is(err, assessmentscoring.ErrUnknownChoice),
		apimodels.IsValidation(err):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
