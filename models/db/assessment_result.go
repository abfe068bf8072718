package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type AssessmentResult struct {
	BaseModel
	ApplicationID string `gorm:"type:varchar(36);uniqueIndex"`
	AssessmentID  string `gorm:"type:varchar(36);index"`
	Assessment    *Assessment
	Correct       int
	Total         int
	Score         float64
	Answers       AnswerSheet `gorm:"type:jsonb"`
	Passed        *bool       // nil пока ответы со свободной формой не проверены
	ReviewedBy    *string     `gorm:"type:varchar(36)"`
	SubmittedAt   time.Time
}

// AnswerSheet ответы кандидата и результат их проверки
type AnswerSheet struct {
	Choices      map[string]string `json:"choices"`       // вопрос -> выбранный вариант
	Essays       map[string]string `json:"essays"`        // вопрос -> свободный ответ
	Correctness  []AnswerCheck     `json:"correctness"`   // проверка вопросов с выбором ответа
	ManualReview []string          `json:"manual_review"` // вопросы для ручной проверки
}

type AnswerCheck struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

func (j AnswerSheet) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *AnswerSheet) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("неподдерживаемый тип ответов (%T)", value)
	}
	if err := json.Unmarshal(data, j); err != nil {
		return err
	}
	return nil
}

func (r AssessmentResult) IsReviewPending() bool {
	return r.Passed == nil
}
