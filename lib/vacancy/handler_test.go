package vacancyhandler

import (
	applicationstore "recruitment-backend/lib/application/store"
	assessmentstore "recruitment-backend/lib/assessment/store"
	vacancystore "recruitment-backend/lib/vacancy/store"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	vacancyapimodels "recruitment-backend/models/api/vacancy"
	dbmodels "recruitment-backend/models/db"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeVacancyStore struct {
	vacancystore.Provider
	vacancies map[string]dbmodels.Vacancy
}

func (f *fakeVacancyStore) Create(rec dbmodels.Vacancy) (string, error) {
	rec.ID = uuid.NewString()
	f.vacancies[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeVacancyStore) GetByID(companyID, id string) (*dbmodels.Vacancy, error) {
	rec, ok := f.vacancies[id]
	if !ok || (companyID != "" && rec.CompanyID != companyID) {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeVacancyStore) Update(companyID, id string, updMap map[string]interface{}) error {
	rec := f.vacancies[id]
	if status, ok := updMap["status"].(models.VacancyStatus); ok {
		rec.Status = status
	}
	f.vacancies[id] = rec
	return nil
}

func (f *fakeVacancyStore) Delete(companyID, id string) error {
	delete(f.vacancies, id)
	return nil
}

type fakeAssessmentStore struct {
	assessmentstore.Provider
}

func (f fakeAssessmentStore) GetByID(companyID, id string) (*dbmodels.Assessment, error) {
	if companyID == "company-1" && id == "assessment-1" {
		return &dbmodels.Assessment{BaseCompanyModel: dbmodels.BaseCompanyModel{BaseModel: dbmodels.BaseModel{ID: id}, CompanyID: companyID}}, nil
	}
	return nil, nil
}

type fakeApplicationStore struct {
	applicationstore.Provider
	withApplications map[string]bool
}

func (f fakeApplicationStore) ExistByVacancy(vacancyID string) (bool, error) {
	return f.withApplications[vacancyID], nil
}

func TestVacancy(t *testing.T) {
	store := &fakeVacancyStore{vacancies: map[string]dbmodels.Vacancy{}}
	applications := fakeApplicationStore{withApplications: map[string]bool{}}
	handler := impl{
		store:            store,
		assessmentStore:  fakeAssessmentStore{},
		applicationStore: applications,
	}
	data := vacancyapimodels.VacancyData{
		Title:        "Go разработчик",
		Skills:       []string{"go", "postgres"},
		AssessmentID: "assessment-1",
	}

	id, err := handler.Create("company-1", "hr-1", data)
	require.Nil(t, err)

	t.Run(`new vacancy is open`, func(t *testing.T) {
		view, err := handler.GetByID("company-1", id)
		require.Nil(t, err)
		require.Equal(t, models.VacancyStatusOpen, view.Status)
		require.Equal(t, "assessment-1", view.AssessmentID)

		public, err := handler.PublicGetByID(id)
		require.Nil(t, err)
		require.Empty(t, public.AssessmentID)
	})

	t.Run(`foreign assessment`, func(t *testing.T) {
		_, err := handler.Create("company-2", "hr-2", data)
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`other company`, func(t *testing.T) {
		_, err := handler.GetByID("company-2", id)
		require.True(t, apimodels.IsNotFound(err))
	})

	t.Run(`closed vacancy is hidden from candidates`, func(t *testing.T) {
		require.Nil(t, handler.StatusChange("company-1", id, "hr-1", models.VacancyStatusClosed))
		_, err := handler.PublicGetByID(id)
		require.True(t, apimodels.IsNotFound(err))
	})

	t.Run(`delete with applications`, func(t *testing.T) {
		applications.withApplications[id] = true
		err := handler.Delete("company-1", id)
		require.True(t, apimodels.IsValidation(err))

		applications.withApplications[id] = false
		require.Nil(t, handler.Delete("company-1", id))
	})
}
