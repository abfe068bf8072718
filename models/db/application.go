package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruitment-backend/models"
	"time"

	"github.com/pkg/errors"
)

type Application struct {
	BaseModel
	CandidateID  string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy"`
	Candidate    *User  `gorm:"foreignKey:CandidateID"`
	VacancyID    string `gorm:"type:varchar(36);uniqueIndex:idx_candidate_vacancy;index"`
	Vacancy      *Vacancy
	Status       models.ApplicationStatus `gorm:"type:varchar(50);index"`
	StageHistory StageHistory             `gorm:"type:jsonb"`
	CoverLetter  string
	DecidedAt    *time.Time
}

// StageHistory прохождение этапов подбора, в порядке входа на этап
type StageHistory []StageEntry

type StageEntry struct {
	ID        string                   `json:"id"`
	Stage     models.ApplicationStatus `json:"stage"`
	Status    models.StageStatus       `json:"status"`
	EnteredAt time.Time                `json:"entered_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

func (j StageHistory) Value() (driver.Value, error) {
	if j == nil {
		j = StageHistory{}
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *StageHistory) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*j = StageHistory{}
		return nil
	default:
		return errors.Errorf("неподдерживаемый тип истории этапов (%T)", value)
	}
	if err := json.Unmarshal(data, j); err != nil {
		return err
	}
	return nil
}

// Clone копия истории, изменения которой не затрагивают исходную запись
func (j StageHistory) Clone() StageHistory {
	if j == nil {
		return nil
	}
	result := make(StageHistory, len(j))
	copy(result, j)
	return result
}

// Current последний этап, на который вошла заявка
func (j StageHistory) Current() (StageEntry, bool) {
	if len(j) == 0 {
		return StageEntry{}, false
	}
	return j[len(j)-1], true
}

// CurrentStage запись текущего этапа заявки. Для заявок на рассмотрении (pending) и
// с принятым решением возвращается последний пройденный этап.
func (a Application) CurrentStage() (StageEntry, bool) {
	return a.StageHistory.Current()
}

func (a Application) IsDecided() bool {
	return a.Status.IsFinal()
}
