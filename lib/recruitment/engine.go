package recruitment

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Advance переводит заявку на следующий этап подбора либо выставляет итоговый статус.
// subStatus задает статус этапа при входе на него (по умолчанию scheduled) и не
// используется для итоговых статусов. Исходная заявка не изменяется, при ошибке
// возвращается пустое значение.
func Advance(app dbmodels.Application, target models.ApplicationStatus, subStatus models.StageStatus, now time.Time) (dbmodels.Application, error) {
	if app.Status.IsFinal() {
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "решение по заявке уже принято (%v)", app.Status.ToHuman())
	}
	if err := target.Validate(); err != nil {
		return dbmodels.Application{}, errors.Wrap(ErrInvalidTransition, err.Error())
	}

	switch target.Kind() {
	case models.StageKind:
		return enterStage(app, target, subStatus, now)
	case models.OutcomeKind:
		if subStatus != "" {
			return dbmodels.Application{}, errors.Wrap(ErrInvalidSubStatusTransition, "статус этапа не указывается при вынесении решения")
		}
		return setOutcome(app, target, now)
	}
	return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "неизвестный статус заявки (%v)", target)
}

// MarkStageStatus меняет статус текущего этапа заявки.
// Допустимые переходы: scheduled -> in_progress -> completed, scheduled|in_progress -> failed.
func MarkStageStatus(app dbmodels.Application, stage models.ApplicationStatus, newStatus models.StageStatus, now time.Time) (dbmodels.Application, error) {
	if app.Status.IsFinal() {
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "решение по заявке уже принято (%v)", app.Status.ToHuman())
	}
	if err := newStatus.Validate(); err != nil {
		return dbmodels.Application{}, errors.Wrap(ErrInvalidSubStatusTransition, err.Error())
	}
	current, ok := app.CurrentStage()
	if !ok || app.Status != stage || current.Stage != stage {
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidSubStatusTransition, "этап %v не является текущим этапом заявки", stage.ToHuman())
	}
	if !current.Status.CanTransitTo(newStatus) {
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidSubStatusTransition, "%v -> %v", current.Status.ToHuman(), newStatus.ToHuman())
	}

	result := app
	result.StageHistory = app.StageHistory.Clone()
	last := &result.StageHistory[len(result.StageHistory)-1]
	last.Status = newStatus
	last.UpdatedAt = now
	return result, nil
}

// NextStage этап, на который заявку можно перевести следующим
func NextStage(app dbmodels.Application) (models.ApplicationStatus, bool) {
	if app.Status.IsFinal() {
		return "", false
	}
	current, ok := app.CurrentStage()
	if !ok {
		return models.FirstStage(), true
	}
	order, _ := current.Stage.Order()
	return models.StageByOrder(order + 1)
}

// AllowedTargets статусы, в которые заявку можно перевести из текущего состояния
func AllowedTargets(app dbmodels.Application) []models.ApplicationStatus {
	result := []models.ApplicationStatus{}
	if app.Status.IsFinal() {
		return result
	}
	candidates := append(models.Stages(), models.StatusPending, models.StatusAccepted, models.StatusRejected)
	for _, target := range candidates {
		if _, err := Advance(app, target, "", app.UpdatedAt); err == nil {
			result = append(result, target)
		}
	}
	return result
}

func enterStage(app dbmodels.Application, target models.ApplicationStatus, subStatus models.StageStatus, now time.Time) (dbmodels.Application, error) {
	targetOrder, _ := target.Order()
	currentOrder := 0
	current, hasCurrent := app.CurrentStage()
	if hasCurrent {
		currentOrder, _ = current.Stage.Order()
	}
	if app.Status == models.StatusPending && hasCurrent {
		// заявка ожидает решения после последнего этапа
		return dbmodels.Application{}, errors.Wrapf(ErrOutOfOrderTransition, "все этапы пройдены, переход на этап %v невозможен", target.ToHuman())
	}
	if targetOrder != currentOrder+1 {
		return dbmodels.Application{}, errors.Wrapf(ErrOutOfOrderTransition, "переход с этапа №%v на этап №%v", currentOrder, targetOrder)
	}
	if subStatus == "" {
		subStatus = models.StageScheduled
	}
	if err := subStatus.Validate(); err != nil {
		return dbmodels.Application{}, errors.Wrap(ErrInvalidSubStatusTransition, err.Error())
	}
	if !subStatus.IsInitial() {
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidSubStatusTransition, "этап не может начинаться со статуса %v", subStatus.ToHuman())
	}

	result := app
	result.Status = target
	result.StageHistory = append(app.StageHistory.Clone(), dbmodels.StageEntry{
		ID:        uuid.NewString(),
		Stage:     target,
		Status:    subStatus,
		EnteredAt: now,
		UpdatedAt: now,
	})
	return result, nil
}

func setOutcome(app dbmodels.Application, target models.ApplicationStatus, now time.Time) (dbmodels.Application, error) {
	current, hasCurrent := app.CurrentStage()
	lastStageDone := hasCurrent &&
		current.Stage == models.LastStage() &&
		current.Status == models.StageCompleted

	switch target {
	case models.StatusPending:
		if app.Status == models.StatusPending || !lastStageDone {
			return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "ожидание решения возможно только после завершения этапа %v", models.LastStage().ToHuman())
		}
	case models.StatusAccepted:
		if !lastStageDone {
			return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "принять кандидата можно только после завершения этапа %v", models.LastStage().ToHuman())
		}
	case models.StatusRejected:
		// отклонить можно на любом этапе
	default:
		return dbmodels.Application{}, errors.Wrapf(ErrInvalidTransition, "неизвестный итоговый статус (%v)", target)
	}

	result := app
	result.Status = target
	result.StageHistory = app.StageHistory.Clone()
	if target == models.StatusRejected && hasCurrent && !current.Status.IsClosed() {
		// незавершенный этап закрывается вместе с отказом
		last := &result.StageHistory[len(result.StageHistory)-1]
		last.Status = models.StageFailed
		last.UpdatedAt = now
	}
	if target.IsFinal() {
		decidedAt := now
		result.DecidedAt = &decidedAt
	}
	return result, nil
}
