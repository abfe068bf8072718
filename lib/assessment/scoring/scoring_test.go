package scoring

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func choice(id string, correct bool) dbmodels.Choice {
	return dbmodels.Choice{BaseModel: dbmodels.BaseModel{ID: id}, ChoiceText: id, IsCorrect: correct}
}

func twoQuestionTest() dbmodels.Assessment {
	return dbmodels.Assessment{
		Title:       "Логика",
		TestType:    models.TestTypeCognitive,
		DurationMin: 20,
		Questions: []dbmodels.Question{
			{
				BaseModel:    dbmodels.BaseModel{ID: "q1"},
				QuestionText: "Первый",
				QuestionType: models.QuestionMultipleChoice,
				Position:     1,
				Choices:      []dbmodels.Choice{choice("q1-a", true), choice("q1-b", false)},
			},
			{
				BaseModel:    dbmodels.BaseModel{ID: "q2"},
				QuestionText: "Второй",
				QuestionType: models.QuestionMultipleChoice,
				Position:     2,
				Choices:      []dbmodels.Choice{choice("q2-a", false), choice("q2-b", true)},
			},
		},
	}
}

func TestScore(t *testing.T) {
	t.Run(`all correct`, func(t *testing.T) {
		result, err := Score(twoQuestionTest(), map[string]string{"q1": "q1-a", "q2": "q2-b"})
		require.Nil(t, err)
		require.Equal(t, 1.0, result.Score)
		require.Equal(t, 2, result.Correct)
		require.Equal(t, 2, result.Total)
		require.Equal(t, []bool{true, true}, result.Correctness())
		require.Empty(t, result.ManualReview)
	})

	t.Run(`one wrong`, func(t *testing.T) {
		result, err := Score(twoQuestionTest(), map[string]string{"q1": "q1-a", "q2": "q2-a"})
		require.Nil(t, err)
		require.Equal(t, 0.5, result.Score)
		require.Equal(t, []bool{true, false}, result.Correctness())
	})

	t.Run(`unanswered counts as incorrect`, func(t *testing.T) {
		result, err := Score(twoQuestionTest(), map[string]string{"q2": "q2-b"})
		require.Nil(t, err)
		require.Equal(t, 0.5, result.Score)
		require.Equal(t, []bool{false, true}, result.Correctness())
		require.False(t, result.Questions[0].Answered)

		result, err = Score(twoQuestionTest(), nil)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
	})

	t.Run(`unknown question`, func(t *testing.T) {
		_, err := Score(twoQuestionTest(), map[string]string{"q1": "q1-a", "q9": "q1-a"})
		require.True(t, errors.Is(err, ErrUnknownQuestion))
	})

	t.Run(`unknown choice`, func(t *testing.T) {
		_, err := Score(twoQuestionTest(), map[string]string{"q1": "q2-b"})
		require.True(t, errors.Is(err, ErrUnknownChoice))
	})

	t.Run(`order follows positions`, func(t *testing.T) {
		rec := twoQuestionTest()
		rec.Questions[0], rec.Questions[1] = rec.Questions[1], rec.Questions[0]
		result, err := Score(rec, map[string]string{"q1": "q1-b", "q2": "q2-b"})
		require.Nil(t, err)
		require.Equal(t, "q1", result.Questions[0].QuestionID)
		require.Equal(t, []bool{false, true}, result.Correctness())
		// исходный тест не переупорядочен
		require.Equal(t, "q2", rec.Questions[0].ID)
	})

	t.Run(`essay questions go to manual review`, func(t *testing.T) {
		rec := twoQuestionTest()
		rec.Questions = append(rec.Questions, dbmodels.Question{
			BaseModel:    dbmodels.BaseModel{ID: "q3"},
			QuestionText: "Почему вы хотите у нас работать?",
			QuestionType: models.QuestionEssay,
			Position:     3,
		})
		result, err := Score(rec, map[string]string{"q1": "q1-a", "q2": "q2-b"})
		require.Nil(t, err)
		require.Equal(t, 1.0, result.Score)
		require.Equal(t, 2, result.Total)
		require.Equal(t, []string{"q3"}, result.ManualReview)

		_, decided := result.Passed(0.6)
		require.False(t, decided)

		_, err = Score(rec, map[string]string{"q3": "q1-a"})
		require.True(t, errors.Is(err, ErrUnknownChoice))
	})

	t.Run(`deterministic`, func(t *testing.T) {
		answers := map[string]string{"q1": "q1-a", "q2": "q2-a"}
		first, err := Score(twoQuestionTest(), answers)
		require.Nil(t, err)
		second, err := Score(twoQuestionTest(), answers)
		require.Nil(t, err)
		require.Equal(t, first, second)
	})

	t.Run(`no multiple choice questions`, func(t *testing.T) {
		result, err := Score(dbmodels.Assessment{}, map[string]string{})
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, 0, result.Total)

		_, decided := result.Passed(0.6)
		require.False(t, decided)
	})

	t.Run(`essay only test stays undecided`, func(t *testing.T) {
		rec := dbmodels.Assessment{
			Questions: []dbmodels.Question{{
				BaseModel:    dbmodels.BaseModel{ID: "q1"},
				QuestionText: "Опишите ваш опыт",
				QuestionType: models.QuestionEssay,
				Position:     1,
			}},
		}
		result, err := Score(rec, map[string]string{})
		require.Nil(t, err)
		require.Equal(t, 0, result.Total)
		require.Equal(t, []string{"q1"}, result.ManualReview)

		passed, decided := result.Passed(0)
		require.False(t, decided)
		require.False(t, passed)
	})
}

func TestPassed(t *testing.T) {
	passed, decided := Result{Score: 0.6, Total: 5}.Passed(0.6)
	require.True(t, decided)
	require.True(t, passed)

	passed, decided = Result{Score: 0.5, Total: 2}.Passed(0.6)
	require.True(t, decided)
	require.False(t, passed)

	_, decided = Result{}.Passed(0)
	require.False(t, decided)
}
