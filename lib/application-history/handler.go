package applicationhistoryhandler

import (
	"recruitment-backend/db"
	applicationhistorystore "recruitment-backend/lib/application-history/store"
	applicationstore "recruitment-backend/lib/application/store"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	applicationapimodels "recruitment-backend/models/api/application"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	List(companyID, applicationID string, filter applicationapimodels.ApplicationHistoryFilter) ([]applicationapimodels.ApplicationHistoryView, int64, error)
	// Save пишет действие в историю в рамках транзакции tx изменения заявки
	Save(tx *gorm.DB, rec dbmodels.Application, user *dbmodels.User, action dbmodels.ActionType, changes dbmodels.ApplicationChanges) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            applicationhistorystore.NewInstance(db.DB),
		newStore:         applicationhistorystore.NewInstance,
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            applicationhistorystore.Provider
	newStore         func(tx *gorm.DB) applicationhistorystore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) List(companyID, applicationID string, filter applicationapimodels.ApplicationHistoryFilter) ([]applicationapimodels.ApplicationHistoryView, int64, error) {
	applicationRec, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("ошибка получения заявки")
		return nil, 0, errors.New("ошибка получения заявки")
	}
	if applicationRec == nil || applicationRec.Vacancy == nil || applicationRec.Vacancy.CompanyID != companyID {
		return nil, 0, apimodels.NewNotFoundError("заявка не найдена")
	}

	rowCount, err := i.store.ListCount(applicationID, filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []applicationapimodels.ApplicationHistoryView{}, rowCount, nil
	}

	list, err := i.store.List(applicationID, filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]applicationapimodels.ApplicationHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ConvertHistory(rec))
	}
	return result, rowCount, nil
}

func (i impl) Save(tx *gorm.DB, rec dbmodels.Application, user *dbmodels.User, action dbmodels.ActionType, changes dbmodels.ApplicationChanges) error {
	historyRec := dbmodels.ApplicationHistory{
		ApplicationID: rec.ID,
		VacancyID:     rec.VacancyID,
		ActionType:    action,
		Changes:       changes,
		UserName:      models.SystemUser,
	}
	if user != nil {
		historyRec.UserID = &user.ID
		historyRec.UserName = user.GetFullName()
	}
	_, err := i.newStore(tx).Create(historyRec)
	if err != nil {
		log.WithError(err).
			WithField("application_id", rec.ID).
			WithField("action", action).
			Error("ошибка сохранения истории действий по заявке")
		return errors.New("ошибка сохранения истории действий по заявке")
	}
	return nil
}

// StatusChange изменение статуса заявки для истории
func StatusChange(oldStatus, newStatus models.ApplicationStatus, comment string) dbmodels.ApplicationChanges {
	return dbmodels.ApplicationChanges{
		Description: comment,
		Data: []dbmodels.ApplicationChange{
			{
				Field:    "status",
				OldValue: oldStatus,
				NewValue: newStatus,
			},
		},
	}
}

// StageStatusChange изменение статуса этапа для истории
func StageStatusChange(stage models.ApplicationStatus, oldStatus, newStatus models.StageStatus, comment string) dbmodels.ApplicationChanges {
	return dbmodels.ApplicationChanges{
		Description: comment,
		Data: []dbmodels.ApplicationChange{
			{
				Field:    string(stage),
				OldValue: oldStatus,
				NewValue: newStatus,
			},
		},
	}
}
