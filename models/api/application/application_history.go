package applicationapimodels

import (
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"time"
)

type ApplicationHistoryFilter struct {
	apimodels.Pagination
	ActionTypes []dbmodels.ActionType `json:"action_types"` // фильтр по типу действия
}

type ApplicationHistoryView struct {
	VacancyID   string                      `json:"vacancy_id"`   // Идентификатор вакансии
	VacancyName string                      `json:"vacancy_name"` // Название вакансии
	UserID      string                      `json:"user_id"`      // Идентификатор автора изменений
	UserName    string                      `json:"user_name"`    // Имя автора изменений
	ActionType  dbmodels.ActionType         `json:"action_type"`  // Тип действия
	Changes     dbmodels.ApplicationChanges `json:"changes"`      // Изменения
	CreatedAt   time.Time                   `json:"created_at"`
}

func ConvertHistory(rec dbmodels.ApplicationHistory) ApplicationHistoryView {
	result := ApplicationHistoryView{
		VacancyID:  rec.VacancyID,
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt,
	}
	if rec.Vacancy != nil {
		result.VacancyName = rec.Vacancy.Title
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}
