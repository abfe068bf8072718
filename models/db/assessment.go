package dbmodels

import (
	"recruitment-backend/models"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Assessment struct {
	BaseCompanyModel
	Title        string `gorm:"type:varchar(255)"`
	Description  string
	TestType     models.TestType `gorm:"type:varchar(50)"`
	DurationMin  int             // длительность теста в минутах
	PassingScore float64         // доля правильных ответов для прохождения (0..1]
	Questions    []Question      `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	BaseModel
	AssessmentID string `gorm:"type:varchar(36);index"`
	QuestionText string
	QuestionType models.QuestionType `gorm:"type:varchar(50)"`
	Position     int
	Choices      []Choice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type Choice struct {
	BaseModel
	QuestionID string `gorm:"type:varchar(36);index"`
	ChoiceText string
	Position   int
	IsCorrect  bool
}

func (a Assessment) Duration() time.Duration {
	return time.Duration(a.DurationMin) * time.Minute
}

// GetPassingScore проходной балл теста; если он не задан, используется defaultScore
func (a Assessment) GetPassingScore(defaultScore float64) float64 {
	if a.PassingScore > 0 {
		return a.PassingScore
	}
	if defaultScore > 0 {
		return defaultScore
	}
	return models.DefaultPassingScore
}

func (a Assessment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("не указано название теста")
	}
	if a.DurationMin <= 0 {
		return errors.New("длительность теста должна быть положительной")
	}
	if !a.TestType.IsValid() {
		return errors.Errorf("неизвестный тип теста (%v)", a.TestType)
	}
	if a.PassingScore < 0 || a.PassingScore > 1 {
		return errors.New("проходной балл должен быть в диапазоне от 0 до 1")
	}
	if len(a.Questions) == 0 {
		return errors.New("тест должен содержать хотя бы один вопрос")
	}
	for idx, question := range a.Questions {
		if err := question.Validate(); err != nil {
			return errors.Wrapf(err, "вопрос №%v", idx+1)
		}
	}
	return nil
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return errors.New("не указан текст вопроса")
	}
	switch q.QuestionType {
	case models.QuestionMultipleChoice:
		if len(q.Choices) < 2 {
			return errors.New("у вопроса с выбором ответа должно быть не меньше двух вариантов")
		}
		correctCount := 0
		for _, choice := range q.Choices {
			if strings.TrimSpace(choice.ChoiceText) == "" {
				return errors.New("не указан текст варианта ответа")
			}
			if choice.IsCorrect {
				correctCount++
			}
		}
		if correctCount != 1 {
			return errors.New("у вопроса с выбором ответа должен быть ровно один правильный вариант")
		}
	case models.QuestionEssay:
		if len(q.Choices) != 0 {
			return errors.New("у вопроса со свободным ответом не должно быть вариантов")
		}
	default:
		return errors.Errorf("неизвестный тип вопроса (%v)", q.QuestionType)
	}
	return nil
}

// CorrectChoiceID идентификатор правильного варианта, пусто для вопросов со свободным ответом
func (q Question) CorrectChoiceID() string {
	for _, choice := range q.Choices {
		if choice.IsCorrect {
			return choice.ID
		}
	}
	return ""
}

func (q Question) HasChoice(choiceID string) bool {
	for _, choice := range q.Choices {
		if choice.ID == choiceID {
			return true
		}
	}
	return false
}

// ChoiceText текст варианта ответа, пусто если вариант не найден
func (q Question) ChoiceText(choiceID string) string {
	for _, choice := range q.Choices {
		if choice.ID == choiceID {
			return choice.ChoiceText
		}
	}
	return ""
}

// Sorted копия теста с упорядоченными вопросами и вариантами, исходная запись не меняется
func (a Assessment) Sorted() Assessment {
	result := a
	result.Questions = make([]Question, len(a.Questions))
	for idx, question := range a.Questions {
		question.Choices = append([]Choice(nil), question.Choices...)
		result.Questions[idx] = question
	}
	result.SortQuestions()
	return result
}

// SortQuestions упорядочивает вопросы и варианты по позиции (при равенстве по идентификатору)
func (a *Assessment) SortQuestions() {
	sort.SliceStable(a.Questions, func(i, j int) bool {
		if a.Questions[i].Position == a.Questions[j].Position {
			return a.Questions[i].ID < a.Questions[j].ID
		}
		return a.Questions[i].Position < a.Questions[j].Position
	})
	for idx := range a.Questions {
		choices := a.Questions[idx].Choices
		sort.SliceStable(choices, func(i, j int) bool {
			if choices[i].Position == choices[j].Position {
				return choices[i].ID < choices[j].ID
			}
			return choices[i].Position < choices[j].Position
		})
	}
}
