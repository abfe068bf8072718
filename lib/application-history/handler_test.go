package applicationhistoryhandler

import (
	applicationhistorystore "recruitment-backend/lib/application-history/store"
	applicationstore "recruitment-backend/lib/application/store"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	applicationapimodels "recruitment-backend/models/api/application"
	dbmodels "recruitment-backend/models/db"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeHistoryStore struct {
	records []dbmodels.ApplicationHistory
}

func (f *fakeHistoryStore) Create(rec dbmodels.ApplicationHistory) (string, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Date(2026, 3, 1, 10, len(f.records), 0, 0, time.UTC)
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeHistoryStore) filtered(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) []dbmodels.ApplicationHistory {
	result := []dbmodels.ApplicationHistory{}
	for _, rec := range f.records {
		if rec.ApplicationID != applicationID {
			continue
		}
		if len(filter.ActionTypes) != 0 && !containsAction(filter.ActionTypes, rec.ActionType) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

func (f *fakeHistoryStore) ListCount(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) (int64, error) {
	return int64(len(f.filtered(applicationID, filter))), nil
}

func (f *fakeHistoryStore) List(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) ([]dbmodels.ApplicationHistory, error) {
	list := f.filtered(applicationID, filter)
	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if offset >= len(list) {
		return []dbmodels.ApplicationHistory{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

func containsAction(list []dbmodels.ActionType, action dbmodels.ActionType) bool {
	for _, item := range list {
		if item == action {
			return true
		}
	}
	return false
}

type fakeApplicationStore struct {
	applicationstore.Provider
	applications map[string]dbmodels.Application
	err          error
}

func (f fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	rec, ok := f.applications[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

const (
	companyID     = "company-1"
	applicationID = "application-1"
)

func newTestHandler(store *fakeHistoryStore) impl {
	vacancy := &dbmodels.Vacancy{
		BaseCompanyModel: dbmodels.BaseCompanyModel{BaseModel: dbmodels.BaseModel{ID: "vacancy-1"}, CompanyID: companyID},
		Title:            "Go разработчик",
	}
	return impl{
		store:    store,
		newStore: func(tx *gorm.DB) applicationhistorystore.Provider { return store },
		applicationStore: fakeApplicationStore{applications: map[string]dbmodels.Application{
			applicationID: {
				BaseModel: dbmodels.BaseModel{ID: applicationID},
				VacancyID: vacancy.ID,
				Vacancy:   vacancy,
				Status:    models.StatusAdministrativeSelection,
			},
			"application-orphan": {
				BaseModel: dbmodels.BaseModel{ID: "application-orphan"},
				VacancyID: "vacancy-deleted",
			},
		}},
	}
}

func TestSave(t *testing.T) {
	store := &fakeHistoryStore{}
	handler := newTestHandler(store)
	rec := dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: applicationID}, VacancyID: "vacancy-1"}

	t.Run(`author is the user`, func(t *testing.T) {
		user := &dbmodels.User{BaseModel: dbmodels.BaseModel{ID: "hr-1"}, FirstName: "Мария", LastName: "Иванова"}
		changes := StatusChange(models.StatusPending, models.StatusAdministrativeSelection, "")
		require.Nil(t, handler.Save(nil, rec, user, dbmodels.HistoryTypeStageChange, changes))

		saved := store.records[0]
		require.Equal(t, applicationID, saved.ApplicationID)
		require.Equal(t, "vacancy-1", saved.VacancyID)
		require.Equal(t, "Мария Иванова", saved.UserName)
		require.Equal(t, "hr-1", *saved.UserID)
		require.Equal(t, "status", saved.Changes.Data[0].Field)
	})

	t.Run(`without user`, func(t *testing.T) {
		require.Nil(t, handler.Save(nil, rec, nil, dbmodels.HistoryTypeCreated, dbmodels.ApplicationChanges{}))

		saved := store.records[1]
		require.Equal(t, models.SystemUser, saved.UserName)
		require.Nil(t, saved.UserID)
	})
}

func TestList(t *testing.T) {
	store := &fakeHistoryStore{}
	handler := newTestHandler(store)
	rec := dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: applicationID}, VacancyID: "vacancy-1"}
	actions := []dbmodels.ActionType{
		dbmodels.HistoryTypeCreated,
		dbmodels.HistoryTypeStageChange,
		dbmodels.HistoryTypeStageStatus,
		dbmodels.HistoryTypeStageStatus,
		dbmodels.HistoryTypeStageChange,
	}
	for _, action := range actions {
		require.Nil(t, handler.Save(nil, rec, nil, action, dbmodels.ApplicationChanges{}))
	}
	other := dbmodels.Application{BaseModel: dbmodels.BaseModel{ID: "application-2"}, VacancyID: "vacancy-1"}
	require.Nil(t, handler.Save(nil, other, nil, dbmodels.HistoryTypeCreated, dbmodels.ApplicationChanges{}))

	t.Run(`all records of application`, func(t *testing.T) {
		list, rowCount, err := handler.List(companyID, applicationID, applicationapimodels.ApplicationHistoryFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(5), rowCount)
		require.Len(t, list, 5)
		require.Equal(t, dbmodels.HistoryTypeCreated, list[0].ActionType)
		require.Equal(t, "Go разработчик", list[0].VacancyName)
		require.Equal(t, models.SystemUser, list[0].UserName)
	})

	t.Run(`filter by action`, func(t *testing.T) {
		filter := applicationapimodels.ApplicationHistoryFilter{ActionTypes: []dbmodels.ActionType{dbmodels.HistoryTypeStageStatus}}
		list, rowCount, err := handler.List(companyID, applicationID, filter)
		require.Nil(t, err)
		require.Equal(t, int64(2), rowCount)
		require.Len(t, list, 2)
	})

	t.Run(`page window`, func(t *testing.T) {
		filter := applicationapimodels.ApplicationHistoryFilter{Pagination: apimodels.Pagination{Page: 2, Limit: 2}}
		list, rowCount, err := handler.List(companyID, applicationID, filter)
		require.Nil(t, err)
		require.Equal(t, int64(5), rowCount)
		require.Len(t, list, 2)
		require.Equal(t, dbmodels.HistoryTypeStageStatus, list[0].ActionType)
	})

	t.Run(`page past the end`, func(t *testing.T) {
		filter := applicationapimodels.ApplicationHistoryFilter{Pagination: apimodels.Pagination{Page: 4, Limit: 2}}
		list, rowCount, err := handler.List(companyID, applicationID, filter)
		require.Nil(t, err)
		require.Equal(t, int64(5), rowCount)
		require.Empty(t, list)
	})

	t.Run(`other company`, func(t *testing.T) {
		_, _, err := handler.List("company-2", applicationID, applicationapimodels.ApplicationHistoryFilter{})
		require.True(t, apimodels.IsNotFound(err))
	})

	t.Run(`unknown application`, func(t *testing.T) {
		_, _, err := handler.List(companyID, "application-404", applicationapimodels.ApplicationHistoryFilter{})
		require.True(t, apimodels.IsNotFound(err))
	})

	t.Run(`application without vacancy`, func(t *testing.T) {
		_, _, err := handler.List(companyID, "application-orphan", applicationapimodels.ApplicationHistoryFilter{})
		require.True(t, apimodels.IsNotFound(err))
	})

	t.Run(`store error`, func(t *testing.T) {
		broken := handler
		broken.applicationStore = fakeApplicationStore{err: errors.New("connection refused")}
		_, _, err := broken.List(companyID, applicationID, applicationapimodels.ApplicationHistoryFilter{})
		require.NotNil(t, err)
		require.False(t, apimodels.IsNotFound(err))
	})
}
