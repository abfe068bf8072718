// Package scoring проверка ответов кандидата на тест.
// Оценка зависит только от описания теста и ответов, скрытого состояния нет.
package scoring

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrUnknownQuestion = errors.New("вопрос не относится к тесту")
	ErrUnknownChoice   = errors.New("вариант ответа не относится к вопросу")
)

type Result struct {
	Correct      int              // правильных ответов на вопросы с выбором
	Total        int              // всего вопросов с выбором ответа
	Score        float64          // Correct / Total, 0 если вопросов с выбором нет
	Questions    []QuestionResult // проверка вопросов с выбором, в порядке теста
	ManualReview []string         // вопросы со свободным ответом для ручной проверки
}

type QuestionResult struct {
	QuestionID string
	Correct    bool
	Answered   bool
}

// Score проверяет ответы answers (вопрос -> выбранный вариант).
// Вопросы без ответа считаются неверными.
func Score(assessment dbmodels.Assessment, answers map[string]string) (Result, error) {
	questions := make(map[string]dbmodels.Question, len(assessment.Questions))
	for _, question := range assessment.Questions {
		questions[question.ID] = question
	}

	// порядок проверки фиксирован, чтобы ошибка была воспроизводимой
	questionIDs := make([]string, 0, len(answers))
	for questionID := range answers {
		questionIDs = append(questionIDs, questionID)
	}
	sort.Strings(questionIDs)
	for _, questionID := range questionIDs {
		question, ok := questions[questionID]
		if !ok {
			return Result{}, errors.Wrapf(ErrUnknownQuestion, "вопрос %v", questionID)
		}
		choiceID := answers[questionID]
		if question.QuestionType != models.QuestionMultipleChoice || !question.HasChoice(choiceID) {
			return Result{}, errors.Wrapf(ErrUnknownChoice, "вопрос %v, вариант %v", questionID, choiceID)
		}
	}

	sorted := assessment.Sorted()
	result := Result{
		Questions:    []QuestionResult{},
		ManualReview: []string{},
	}
	for _, question := range sorted.Questions {
		switch question.QuestionType {
		case models.QuestionMultipleChoice:
			choiceID, answered := answers[question.ID]
			correct := answered && choiceID == question.CorrectChoiceID()
			result.Total++
			if correct {
				result.Correct++
			}
			result.Questions = append(result.Questions, QuestionResult{
				QuestionID: question.ID,
				Correct:    correct,
				Answered:   answered,
			})
		case models.QuestionEssay:
			result.ManualReview = append(result.ManualReview, question.ID)
		}
	}
	if result.Total != 0 {
		result.Score = float64(result.Correct) / float64(result.Total)
	}
	return result, nil
}

// Correctness признаки правильности ответов в порядке вопросов теста
func (r Result) Correctness() []bool {
	result := make([]bool, 0, len(r.Questions))
	for _, question := range r.Questions {
		result = append(result, question.Correct)
	}
	return result
}

// Passed итог теста при проходном балле passingScore.
// decided = false, пока остаются вопросы для ручной проверки
// либо в тесте нет вопросов с автоматической проверкой.
func (r Result) Passed(passingScore float64) (passed bool, decided bool) {
	if len(r.ManualReview) != 0 || r.Total == 0 {
		return false, false
	}
	return r.Score >= passingScore, true
}
