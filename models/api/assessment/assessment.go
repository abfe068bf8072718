package assessmentapimodels

import (
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	dbmodels "recruitment-backend/models/db"
	"time"
)

type AssessmentData struct {
	Title        string          `json:"title"`         // название теста
	Description  string          `json:"description"`   // инструкция для кандидата
	TestType     models.TestType `json:"test_type"`     // тип теста
	DurationMin  int             `json:"duration_min"`  // длительность в минутах
	PassingScore float64         `json:"passing_score"` // проходной балл (0..1], по умолчанию из настроек
	Questions    []QuestionData  `json:"questions"`     // вопросы в порядке показа
}

type QuestionData struct {
	Text    string              `json:"text"`
	Type    models.QuestionType `json:"type"`
	Choices []ChoiceData        `json:"choices"` // только для вопросов с выбором ответа
}

type ChoiceData struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// ToDB запись теста с вопросами; позиции вопросов и вариантов задаются порядком в запросе
func (a AssessmentData) ToDB(companyID string) dbmodels.Assessment {
	rec := dbmodels.Assessment{
		BaseCompanyModel: dbmodels.BaseCompanyModel{CompanyID: companyID},
		Title:            a.Title,
		Description:      a.Description,
		TestType:         a.TestType,
		DurationMin:      a.DurationMin,
		PassingScore:     a.PassingScore,
		Questions:        a.questionsToDB(),
	}
	return rec
}

func (a AssessmentData) questionsToDB() []dbmodels.Question {
	result := make([]dbmodels.Question, 0, len(a.Questions))
	for idx, question := range a.Questions {
		rec := dbmodels.Question{
			QuestionText: question.Text,
			QuestionType: question.Type,
			Position:     idx + 1,
			Choices:      make([]dbmodels.Choice, 0, len(question.Choices)),
		}
		for choiceIdx, choice := range question.Choices {
			rec.Choices = append(rec.Choices, dbmodels.Choice{
				ChoiceText: choice.Text,
				Position:   choiceIdx + 1,
				IsCorrect:  choice.IsCorrect,
			})
		}
		result = append(result, rec)
	}
	return result
}

// Validate проверка теста вместе с вопросами
func (a AssessmentData) Validate() error {
	return a.ToDB("").Validate()
}

type AssessmentView struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	TestType     models.TestType `json:"test_type"`
	TestTypeName string          `json:"test_type_name"`
	DurationMin  int             `json:"duration_min"`
	PassingScore float64         `json:"passing_score,omitempty"`
	Questions    []QuestionView  `json:"questions"`
	CreatedAt    time.Time       `json:"created_at"`
}

type QuestionView struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Type    models.QuestionType `json:"type"`
	Choices []ChoiceView        `json:"choices"`
}

type ChoiceView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect *bool  `json:"is_correct,omitempty"` // не передается кандидату
}

// Convert тест для HR специалиста, с правильными ответами
func Convert(rec dbmodels.Assessment) AssessmentView {
	return convert(rec, true)
}

// ConvertForCandidate тест для прохождения, без признака правильного ответа и проходного балла
func ConvertForCandidate(rec dbmodels.Assessment) AssessmentView {
	result := convert(rec, false)
	result.PassingScore = 0
	return result
}

func convert(rec dbmodels.Assessment, withAnswers bool) AssessmentView {
	rec = rec.Sorted()
	result := AssessmentView{
		ID:           rec.ID,
		Title:        rec.Title,
		Description:  rec.Description,
		TestType:     rec.TestType,
		TestTypeName: rec.TestType.ToHuman(),
		DurationMin:  rec.DurationMin,
		PassingScore: rec.PassingScore,
		Questions:    make([]QuestionView, 0, len(rec.Questions)),
		CreatedAt:    rec.CreatedAt,
	}
	for _, question := range rec.Questions {
		view := QuestionView{
			ID:      question.ID,
			Text:    question.QuestionText,
			Type:    question.QuestionType,
			Choices: make([]ChoiceView, 0, len(question.Choices)),
		}
		for _, choice := range question.Choices {
			choiceView := ChoiceView{
				ID:   choice.ID,
				Text: choice.ChoiceText,
			}
			if withAnswers {
				isCorrect := choice.IsCorrect
				choiceView.IsCorrect = &isCorrect
			}
			view.Choices = append(view.Choices, choiceView)
		}
		result.Questions = append(result.Questions, view)
	}
	return result
}

type AssessmentFilter struct {
	apimodels.Pagination
	Search   string          `json:"search"`    // поиск по названию
	TestType models.TestType `json:"test_type"` // фильтр по типу теста
}
