package assessmentapimodels

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssessmentData(t *testing.T) {
	data := AssessmentData{
		Title:       "Логика",
		TestType:    models.TestTypeCognitive,
		DurationMin: 15,
		Questions: []QuestionData{
			{
				Text: "2+2",
				Type: models.QuestionMultipleChoice,
				Choices: []ChoiceData{
					{Text: "4", IsCorrect: true},
					{Text: "5"},
				},
			},
			{Text: "Опишите подход", Type: models.QuestionEssay},
		},
	}

	t.Run(`to db keeps order`, func(t *testing.T) {
		require.Nil(t, data.Validate())
		rec := data.ToDB("company-1")
		require.Equal(t, "company-1", rec.CompanyID)
		require.Len(t, rec.Questions, 2)
		require.Equal(t, 1, rec.Questions[0].Position)
		require.Equal(t, 2, rec.Questions[1].Position)
		require.Equal(t, 2, rec.Questions[0].Choices[1].Position)
		require.Empty(t, rec.Questions[1].Choices)
	})

	t.Run(`invalid question`, func(t *testing.T) {
		broken := data
		broken.Questions = []QuestionData{{Text: "2+2", Type: models.QuestionMultipleChoice, Choices: []ChoiceData{{Text: "4"}, {Text: "5"}}}}
		require.NotNil(t, broken.Validate())
	})
}

func TestConvertForCandidate(t *testing.T) {
	rec := dbmodels.Assessment{
		Title:        "Логика",
		TestType:     models.TestTypeCognitive,
		PassingScore: 0.7,
		Questions: []dbmodels.Question{
			{
				BaseModel:    dbmodels.BaseModel{ID: "q2"},
				QuestionText: "Второй",
				QuestionType: models.QuestionEssay,
				Position:     2,
			},
			{
				BaseModel:    dbmodels.BaseModel{ID: "q1"},
				QuestionText: "Первый",
				QuestionType: models.QuestionMultipleChoice,
				Position:     1,
				Choices: []dbmodels.Choice{
					{BaseModel: dbmodels.BaseModel{ID: "c1"}, ChoiceText: "да", IsCorrect: true, Position: 1},
					{BaseModel: dbmodels.BaseModel{ID: "c2"}, ChoiceText: "нет", Position: 2},
				},
			},
		},
	}

	view := ConvertForCandidate(rec)
	require.Equal(t, "q1", view.Questions[0].ID)
	require.Equal(t, 0.0, view.PassingScore)
	for _, choice := range view.Questions[0].Choices {
		require.Nil(t, choice.IsCorrect)
	}
	// исходная запись не переупорядочена
	require.Equal(t, "q2", rec.Questions[0].ID)

	full := Convert(rec)
	require.NotNil(t, full.Questions[0].Choices[0].IsCorrect)
	require.True(t, *full.Questions[0].Choices[0].IsCorrect)
	require.Equal(t, 0.7, full.PassingScore)
}
