package pdfexport

import (
	"recruitment-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssessmentReport(t *testing.T) {
	passed := true
	data := models.AssessmentReportData{
		CandidateName:   "Candidate",
		CandidateEmail:  "candidate@example.com",
		VacancyTitle:    "Go developer",
		CompanyName:     "Acme",
		AssessmentTitle: "Logic",
		TestType:        models.TestTypeCognitive,
		SubmittedAt:     time.Date(2026, 5, 14, 9, 30, 0, 0, time.UTC),
		Correct:         1,
		Total:           2,
		Score:           0.5,
		PassingScore:    0.5,
		Passed:          &passed,
		Questions: []models.AssessmentReportQuestion{
			{Text: "2+2", QuestionType: models.QuestionMultipleChoice, Correct: true, Answer: "4"},
			{Text: "3+3", QuestionType: models.QuestionMultipleChoice, Answer: "5"},
			{Text: "About you", QuestionType: models.QuestionEssay, Answer: "..."},
		},
	}

	t.Run(`core font`, func(t *testing.T) {
		file, err := AssessmentReport("", data)
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(file[:4]))
	})

	t.Run(`missing font dir`, func(t *testing.T) {
		_, err := AssessmentReport(t.TempDir(), data)
		require.NotNil(t, err)
	})
}

func TestQuestionResult(t *testing.T) {
	require.Equal(t, "верно", questionResult(models.AssessmentReportQuestion{QuestionType: models.QuestionMultipleChoice, Answer: "a", Correct: true}))
	require.Equal(t, "нет ответа", questionResult(models.AssessmentReportQuestion{QuestionType: models.QuestionMultipleChoice}))
	require.Equal(t, "ожидает проверки", resultName(nil))
	require.Equal(t, "абв...", cut("абвгд", 3))
}
