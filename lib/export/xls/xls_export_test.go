package xlsexport

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicationList(t *testing.T) {
	created := time.Date(2026, 5, 14, 9, 30, 0, 0, time.UTC)
	list := []dbmodels.Application{
		{
			BaseModel: dbmodels.BaseModel{ID: "app-1", CreatedAt: created},
			Candidate: &dbmodels.User{FirstName: "Иван", LastName: "Петров", Email: "ivan@example.com"},
			Vacancy:   &dbmodels.Vacancy{Title: "Go разработчик"},
			Status:    models.StatusPsychologicalTest,
			StageHistory: dbmodels.StageHistory{
				{Stage: models.StatusAdministrativeSelection, Status: models.StageCompleted},
				{Stage: models.StatusPsychologicalTest, Status: models.StageCompleted},
			},
		},
		{
			BaseModel: dbmodels.BaseModel{ID: "app-2", CreatedAt: created},
			Status:    models.StatusPending,
		},
	}
	results := map[string]dbmodels.AssessmentResult{
		"app-1": {Score: 0.75},
	}

	buf, err := impl{}.ExportApplicationList(list, results)
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	rows, err := f.GetRows("Заявки")
	require.Nil(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, applicationHeaders, rows[0])
	require.Equal(t, "Иван Петров", rows[1][0])
	require.Equal(t, "14.05.2026", rows[1][4])
	require.Equal(t, models.StatusPsychologicalTest.ToHuman(), rows[1][5])
	require.Equal(t, models.StageCompleted.ToHuman(), rows[1][7])
	require.Equal(t, "75%", rows[1][8])
	require.Equal(t, models.StatusPending.ToHuman(), rows[2][5])
}
