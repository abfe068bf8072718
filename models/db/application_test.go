package dbmodels

import (
	"encoding/json"
	"recruitment-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStageHistory(t *testing.T) {
	entered := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	history := StageHistory{
		{ID: "e1", Stage: models.StatusAdministrativeSelection, Status: models.StageCompleted, EnteredAt: entered, UpdatedAt: entered.Add(time.Hour)},
		{ID: "e2", Stage: models.StatusPsychologicalTest, Status: models.StageCompleted, EnteredAt: entered.Add(24 * time.Hour), UpdatedAt: entered.Add(25 * time.Hour)},
		{ID: "e3", Stage: models.StatusInterview, Status: models.StageInProgress, EnteredAt: entered.Add(48 * time.Hour), UpdatedAt: entered.Add(48 * time.Hour)},
	}

	t.Run(`jsonb round trip keeps order`, func(t *testing.T) {
		value, err := history.Value()
		require.Nil(t, err)

		var restored StageHistory
		require.Nil(t, restored.Scan([]byte(value.(string))))
		require.Equal(t, len(history), len(restored))
		for idx := range history {
			require.Equal(t, history[idx].ID, restored[idx].ID)
			require.Equal(t, history[idx].Stage, restored[idx].Stage)
			require.Equal(t, history[idx].Status, restored[idx].Status)
			require.True(t, history[idx].EnteredAt.Equal(restored[idx].EnteredAt))
		}

		var fromString StageHistory
		require.Nil(t, fromString.Scan(value))
		require.Equal(t, restored, fromString)
	})

	t.Run(`application json round trip`, func(t *testing.T) {
		app := Application{
			CandidateID:  "c1",
			VacancyID:    "v1",
			Status:       models.StatusInterview,
			StageHistory: history,
		}
		body, err := json.Marshal(app)
		require.Nil(t, err)
		restored := Application{}
		require.Nil(t, json.Unmarshal(body, &restored))
		require.Equal(t, models.StatusInterview, restored.Status)
		require.Equal(t, []string{"e1", "e2", "e3"}, []string{restored.StageHistory[0].ID, restored.StageHistory[1].ID, restored.StageHistory[2].ID})
	})

	t.Run(`empty history`, func(t *testing.T) {
		var empty StageHistory
		value, err := empty.Value()
		require.Nil(t, err)
		require.Equal(t, "[]", value)
		_, ok := empty.Current()
		require.False(t, ok)
		require.Nil(t, empty.Clone())
	})

	t.Run(`clone is independent`, func(t *testing.T) {
		cloned := history.Clone()
		cloned[0].Status = models.StageFailed
		require.Equal(t, models.StageCompleted, history[0].Status)
		current, ok := history.Current()
		require.True(t, ok)
		require.Equal(t, "e3", current.ID)
	})
}
