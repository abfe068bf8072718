package companyhandler

import (
	apimodels "recruitment-backend/models/api"
	companyapimodels "recruitment-backend/models/api/company"
	dbmodels "recruitment-backend/models/db"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	companies map[string]dbmodels.Company
}

func (f *fakeStore) Create(rec dbmodels.Company) (string, error) {
	rec.ID = uuid.NewString()
	f.companies[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Company, error) {
	rec, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) FindByName(name string) (*dbmodels.Company, error) {
	for _, rec := range f.companies {
		if rec.Name == name {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.companies[id]
	rec.Name = updMap["name"].(string)
	f.companies[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.companies, id)
	return nil
}

func (f *fakeStore) ListCount(filter companyapimodels.CompanyFilter) (int64, error) {
	return int64(len(f.companies)), nil
}

func (f *fakeStore) List(filter companyapimodels.CompanyFilter) ([]dbmodels.Company, error) {
	result := []dbmodels.Company{}
	for _, rec := range f.companies {
		result = append(result, rec)
	}
	return result, nil
}

func TestCompany(t *testing.T) {
	store := &fakeStore{companies: map[string]dbmodels.Company{}}
	handler := impl{store: store}

	id, err := handler.Create(companyapimodels.CompanyData{Name: " ООО Ромашка "})
	require.Nil(t, err)

	t.Run(`name is trimmed`, func(t *testing.T) {
		view, err := handler.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "ООО Ромашка", view.Name)
	})

	t.Run(`duplicate name`, func(t *testing.T) {
		_, err := handler.Create(companyapimodels.CompanyData{Name: "ООО Ромашка"})
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`update keeps own name`, func(t *testing.T) {
		require.Nil(t, handler.Update(id, companyapimodels.CompanyData{Name: "ООО Ромашка"}))
	})

	t.Run(`list`, func(t *testing.T) {
		list, count, err := handler.List(companyapimodels.CompanyFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), count)
		require.Len(t, list, 1)
	})

	t.Run(`delete`, func(t *testing.T) {
		require.Nil(t, handler.Delete(id))
		_, err := handler.GetByID(id)
		require.True(t, apimodels.IsNotFound(err))
	})
}
