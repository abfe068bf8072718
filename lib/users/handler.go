package usershandler

import (
	"recruitment-backend/db"
	companystore "recruitment-backend/lib/company/store"
	"recruitment-backend/lib/rbac"
	usersstore "recruitment-backend/lib/users/store"
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	authapimodels "recruitment-backend/models/api/auth"
	usersapimodels "recruitment-backend/models/api/users"
	dbmodels "recruitment-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error)
	Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error)
	RefreshToken(request authapimodels.JWTRefreshRequest) (authapimodels.JWTResponse, error)
	Me(userID string) (authapimodels.MeView, error)
	GetByID(userID string) (*dbmodels.User, error)
	CreateStaff(request usersapimodels.UserData) (id string, err error)
	List(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, int64, error)
	SetActive(userID string, isActive bool) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        usersstore.NewInstance(db.DB),
		companyStore: companystore.NewInstance(db.DB),
		permissions:  rbac.Instance.GetPermissions,
	}
}

type impl struct {
	store        usersstore.Provider
	companyStore companystore.Provider
	permissions  func(role models.UserRole) map[models.Module][]models.Permission
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.store.FindByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, errors.New("ошибка регистрации пользователя")
	}
	if exist != nil {
		return authapimodels.JWTResponse{}, apimodels.NewValidationError("пользователь с такой почтой уже существует")
	}
	password, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("ошибка регистрации пользователя")
		return authapimodels.JWTResponse{}, errors.New("ошибка регистрации пользователя")
	}
	rec := dbmodels.User{
		Email:     strings.TrimSpace(request.Email),
		Password:  password,
		FirstName: strings.TrimSpace(request.FirstName),
		LastName:  strings.TrimSpace(request.LastName),
		Phone:     request.Phone,
		Role:      models.CandidateRole,
		IsActive:  true,
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return authapimodels.JWTResponse{}, errors.New("ошибка регистрации пользователя")
	}
	logger.WithField("user_id", rec.ID).Info("зарегистрирован кандидат")
	return i.getTokens(rec)
}

func (i impl) Login(request authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", request.Email)
	user, err := i.store.FindByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, errors.New("ошибка авторизации")
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, apimodels.NewValidationError("неверная почта или пароль")
	}
	if !authutils.CheckPassword(user.Password, request.Password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, apimodels.NewValidationError("неверная почта или пароль")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, apimodels.NewValidationError("пользователь заблокирован")
	}
	return i.getTokens(*user)
}

func (i impl) RefreshToken(request authapimodels.JWTRefreshRequest) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(request.RefreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, apimodels.NewValidationError(err.Error())
	}
	user, err := i.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, apimodels.NewValidationError("пользователь заблокирован")
	}
	return i.getTokens(*user)
}

func (i impl) Me(userID string) (authapimodels.MeView, error) {
	user, err := i.GetByID(userID)
	if err != nil {
		return authapimodels.MeView{}, err
	}
	result := authapimodels.MeView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		Role:        user.Role,
		RoleName:    user.Role.ToHuman(),
		CompanyID:   user.GetCompanyID(),
		Permissions: i.permissions(user.Role),
	}
	if user.Company != nil {
		result.CompanyName = user.Company.Name
	}
	return result, nil
}

func (i impl) GetByID(userID string) (*dbmodels.User, error) {
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка поиска пользователя")
		return nil, errors.New("ошибка поиска пользователя")
	}
	if user == nil {
		return nil, apimodels.NewNotFoundError("пользователь не найден")
	}
	return user, nil
}

func (i impl) CreateStaff(request usersapimodels.UserData) (id string, err error) {
	logger := log.WithField("email", request.Email).WithField("role", request.Role)
	exist, err := i.store.FindByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return "", errors.New("ошибка создания пользователя")
	}
	if exist != nil {
		return "", apimodels.NewValidationError("пользователь с такой почтой уже существует")
	}
	rec := dbmodels.User{
		Email:     strings.TrimSpace(request.Email),
		FirstName: strings.TrimSpace(request.FirstName),
		LastName:  strings.TrimSpace(request.LastName),
		Phone:     request.Phone,
		Role:      request.Role,
		IsActive:  true,
	}
	if request.CompanyID != "" {
		company, err := i.companyStore.GetByID(request.CompanyID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения компании")
			return "", errors.New("ошибка создания пользователя")
		}
		if company == nil {
			return "", apimodels.NewValidationError("компания не найдена")
		}
		rec.CompanyID = &company.ID
	}
	rec.Password, err = authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return "", errors.New("ошибка создания пользователя")
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return "", errors.New("ошибка создания пользователя")
	}
	return id, nil
}

func (i impl) List(filter usersapimodels.UserFilter) ([]usersapimodels.UserView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []usersapimodels.UserView{}, rowCount, nil
	}

	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, 0, errors.New("ошибка получения списка пользователей")
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) SetActive(userID string, isActive bool) error {
	if _, err := i.GetByID(userID); err != nil {
		return err
	}
	err := i.store.Update(userID, map[string]interface{}{"is_active": isActive})
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка изменения активности пользователя")
		return errors.New("ошибка изменения активности пользователя")
	}
	return nil
}

func (i impl) getTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.GetFullName(), user.GetCompanyID(), user.Role)
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, errors.New("ошибка генерации JWT")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.JWTResponse{}, errors.New("ошибка генерации JWT")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}
