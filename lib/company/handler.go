package companyhandler

import (
	"recruitment-backend/db"
	companystore "recruitment-backend/lib/company/store"
	apimodels "recruitment-backend/models/api"
	companyapimodels "recruitment-backend/models/api/company"
	dbmodels "recruitment-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(request companyapimodels.CompanyData) (id string, err error)
	Update(id string, request companyapimodels.CompanyData) error
	GetByID(id string) (companyapimodels.CompanyView, error)
	Delete(id string) error
	List(filter companyapimodels.CompanyFilter) ([]companyapimodels.CompanyView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: companystore.NewInstance(db.DB),
	}
}

type impl struct {
	store companystore.Provider
}

func (i impl) Create(request companyapimodels.CompanyData) (id string, err error) {
	logger := log.WithField("name", request.Name)
	if err = i.checkName("", request.Name); err != nil {
		return "", err
	}
	rec := dbmodels.Company{
		Name:        strings.TrimSpace(request.Name),
		Description: request.Description,
		Website:     request.Website,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания компании")
		return "", errors.New("ошибка создания компании")
	}
	return id, nil
}

func (i impl) Update(id string, request companyapimodels.CompanyData) error {
	if _, err := i.get(id); err != nil {
		return err
	}
	if err := i.checkName(id, request.Name); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":        strings.TrimSpace(request.Name),
		"description": request.Description,
		"website":     request.Website,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("company_id", id).WithError(err).Error("ошибка обновления компании")
		return errors.New("ошибка обновления компании")
	}
	return nil
}

func (i impl) GetByID(id string) (companyapimodels.CompanyView, error) {
	rec, err := i.get(id)
	if err != nil {
		return companyapimodels.CompanyView{}, err
	}
	return companyapimodels.Convert(*rec), nil
}

func (i impl) Delete(id string) error {
	if _, err := i.get(id); err != nil {
		return err
	}
	err := i.store.Delete(id)
	if err != nil {
		log.WithField("company_id", id).WithError(err).Error("ошибка удаления компании")
		return errors.New("ошибка удаления компании")
	}
	return nil
}

func (i impl) List(filter companyapimodels.CompanyFilter) ([]companyapimodels.CompanyView, int64, error) {
	rowCount, err := i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []companyapimodels.CompanyView{}, rowCount, nil
	}

	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка компаний")
		return nil, 0, errors.New("ошибка получения списка компаний")
	}
	result := make([]companyapimodels.CompanyView, 0, len(list))
	for _, rec := range list {
		result = append(result, companyapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) get(id string) (*dbmodels.Company, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("company_id", id).WithError(err).Error("ошибка получения компании")
		return nil, errors.New("ошибка получения компании")
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("компания не найдена")
	}
	return rec, nil
}

func (i impl) checkName(id, name string) error {
	exist, err := i.store.FindByName(strings.TrimSpace(name))
	if err != nil {
		log.WithField("name", name).WithError(err).Error("ошибка поиска компании по названию")
		return errors.New("ошибка поиска компании по названию")
	}
	if exist != nil && exist.ID != id {
		return apimodels.NewValidationError("компания с таким названием уже существует")
	}
	return nil
}
