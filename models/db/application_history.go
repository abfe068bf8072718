package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type ApplicationHistory struct {
	BaseModel
	ApplicationID string   `gorm:"type:varchar(36);index"`
	VacancyID     string   `gorm:"type:varchar(36)"`
	Vacancy       *Vacancy `gorm:"foreignKey:VacancyID"`
	UserID        *string
	UserName      string
	ActionType    ActionType         `gorm:"type:varchar(255)"`
	Changes       ApplicationChanges `gorm:"type:jsonb"`
}

func (j ApplicationChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ApplicationChanges) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("неподдерживаемый тип изменений (%T)", value)
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	return nil
}

type ApplicationChanges struct {
	Description string              `json:"description"` // Комментарий
	Data        []ApplicationChange `json:"data"`        // Список изменений
}

type ApplicationChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeCreated     ActionType = "created"      // Кандидат откликнулся на вакансию
	HistoryTypeStageChange ActionType = "stage_change" // Заявка переведена на другой этап
	HistoryTypeStageStatus ActionType = "stage_status" // Изменен статус этапа
	HistoryTypeAssessment  ActionType = "assessment"   // Кандидат прошел тест
	HistoryTypeReview      ActionType = "review"       // Проверка свободных ответов
	HistoryTypeDecision    ActionType = "decision"     // Принято решение по заявке
	HistoryTypeReject      ActionType = "reject"       // Кандидат отклонен
)
