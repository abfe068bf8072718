package usershandler

import (
	"recruitment-backend/config"
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	authapimodels "recruitment-backend/models/api/auth"
	companyapimodels "recruitment-backend/models/api/company"
	usersapimodels "recruitment-backend/models/api/users"
	dbmodels "recruitment-backend/models/db"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = uuid.NewString()
	f.users[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if strings.EqualFold(rec.Email, email) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.users[id]
	if isActive, ok := updMap["is_active"].(bool); ok {
		rec.IsActive = isActive
	}
	f.users[id] = rec
	return nil
}

func (f *fakeUserStore) ListCount(filter usersapimodels.UserFilter) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) List(filter usersapimodels.UserFilter) ([]dbmodels.User, error) {
	result := []dbmodels.User{}
	for _, rec := range f.users {
		result = append(result, rec)
	}
	return result, nil
}

type fakeCompanyStore struct {
	companies map[string]dbmodels.Company
}

func (f fakeCompanyStore) Create(rec dbmodels.Company) (string, error) { return "", nil }

func (f fakeCompanyStore) GetByID(id string) (*dbmodels.Company, error) {
	rec, ok := f.companies[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f fakeCompanyStore) FindByName(name string) (*dbmodels.Company, error) { return nil, nil }

func (f fakeCompanyStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f fakeCompanyStore) Delete(id string) error { return nil }

func (f fakeCompanyStore) ListCount(filter companyapimodels.CompanyFilter) (int64, error) {
	return 0, nil
}

func (f fakeCompanyStore) List(filter companyapimodels.CompanyFilter) ([]dbmodels.Company, error) {
	return nil, nil
}

func newTestHandler() (impl, *fakeUserStore) {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf

	store := &fakeUserStore{users: map[string]dbmodels.User{}}
	companies := fakeCompanyStore{companies: map[string]dbmodels.Company{
		"company-1": {BaseModel: dbmodels.BaseModel{ID: "company-1"}, Name: "ООО Ромашка"},
	}}
	return impl{
		store:        store,
		companyStore: companies,
		permissions: func(role models.UserRole) map[models.Module][]models.Permission {
			return map[models.Module][]models.Permission{models.CandidateModule: {models.ApplyPermission}}
		},
	}, store
}

func TestRegisterAndLogin(t *testing.T) {
	handler, store := newTestHandler()
	request := authapimodels.RegisterRequest{
		Email:     "candidate@example.com",
		Password:  "password123",
		FirstName: "Иван",
		LastName:  "Петров",
	}

	t.Run(`register candidate`, func(t *testing.T) {
		tokens, err := handler.Register(request)
		require.Nil(t, err)
		require.NotEmpty(t, tokens.Token)
		userID, err := authutils.ParseRefreshToken(tokens.RefreshToken)
		require.Nil(t, err)
		rec := store.users[userID]
		require.Equal(t, models.CandidateRole, rec.Role)
		require.NotEqual(t, request.Password, rec.Password)
	})

	t.Run(`duplicate email`, func(t *testing.T) {
		_, err := handler.Register(request)
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`login`, func(t *testing.T) {
		tokens, err := handler.Login(authapimodels.LoginRequest{Email: request.Email, Password: request.Password})
		require.Nil(t, err)
		require.NotEmpty(t, tokens.Token)

		refreshed, err := handler.RefreshToken(authapimodels.JWTRefreshRequest{RefreshToken: tokens.RefreshToken})
		require.Nil(t, err)
		require.NotEmpty(t, refreshed.Token)
	})

	t.Run(`wrong password`, func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{Email: request.Email, Password: "wrong-password"})
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`blocked user`, func(t *testing.T) {
		user, err := store.FindByEmail(request.Email)
		require.Nil(t, err)
		require.Nil(t, handler.SetActive(user.ID, false))
		_, err = handler.Login(authapimodels.LoginRequest{Email: request.Email, Password: request.Password})
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`me`, func(t *testing.T) {
		user, err := store.FindByEmail(request.Email)
		require.Nil(t, err)
		me, err := handler.Me(user.ID)
		require.Nil(t, err)
		require.Equal(t, "Иван", me.FirstName)
		require.Len(t, me.Permissions[models.CandidateModule], 1)

		_, err = handler.Me("unknown")
		require.True(t, apimodels.IsNotFound(err))
	})
}

func TestCreateStaff(t *testing.T) {
	handler, store := newTestHandler()

	t.Run(`hr with company`, func(t *testing.T) {
		id, err := handler.CreateStaff(usersapimodels.UserData{
			Email:     "hr@example.com",
			Password:  "password123",
			FirstName: "Мария",
			Role:      models.HRRole,
			CompanyID: "company-1",
		})
		require.Nil(t, err)
		require.Equal(t, "company-1", store.users[id].GetCompanyID())
	})

	t.Run(`unknown company`, func(t *testing.T) {
		_, err := handler.CreateStaff(usersapimodels.UserData{
			Email:     "hr2@example.com",
			Password:  "password123",
			FirstName: "Ольга",
			Role:      models.HRRole,
			CompanyID: "company-2",
		})
		require.True(t, apimodels.IsValidation(err))
	})

	t.Run(`list`, func(t *testing.T) {
		list, count, err := handler.List(usersapimodels.UserFilter{})
		require.Nil(t, err)
		require.Equal(t, int64(1), count)
		require.Len(t, list, 1)
	})
}
