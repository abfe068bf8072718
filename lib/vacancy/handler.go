package vacancyhandler

import (
	"recruitment-backend/db"
	applicationstore "recruitment-backend/lib/application/store"
	assessmentstore "recruitment-backend/lib/assessment/store"
	vacancystore "recruitment-backend/lib/vacancy/store"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	vacancyapimodels "recruitment-backend/models/api/vacancy"
	dbmodels "recruitment-backend/models/db"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(companyID, userID string, data vacancyapimodels.VacancyData) (id string, err error)
	GetByID(companyID, id string) (vacancyapimodels.VacancyView, error)
	Update(companyID, id string, data vacancyapimodels.VacancyData) error
	Delete(companyID, id string) error
	List(companyID string, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error)
	StatusChange(companyID, id, userID string, status models.VacancyStatus) error
	// PublicList открытые вакансии всех компаний
	PublicList(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error)
	PublicGetByID(id string) (vacancyapimodels.VacancyView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            vacancystore.NewInstance(db.DB),
		assessmentStore:  assessmentstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            vacancystore.Provider
	assessmentStore  assessmentstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) checkDependency(companyID string, data vacancyapimodels.VacancyData) error {
	if data.AssessmentID == "" {
		return nil
	}
	rec, err := i.assessmentStore.GetByID(companyID, data.AssessmentID)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("ошибка получения теста")
		return errors.New("ошибка получения теста")
	}
	if rec == nil {
		return apimodels.NewValidationError("тест не найден")
	}
	return nil
}

func (i impl) Create(companyID, userID string, data vacancyapimodels.VacancyData) (id string, err error) {
	logger := i.getLogger(companyID, "", userID)
	err = i.checkDependency(companyID, data)
	if err != nil {
		return "", err
	}
	rec := dbmodels.Vacancy{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		AuthorID:    userID,
		Title:       strings.TrimSpace(data.Title),
		Description: data.Description,
		Location:    data.Location,
		Skills:      pq.StringArray(data.Skills),
		SalaryFrom:  data.SalaryFrom,
		SalaryTo:    data.SalaryTo,
		Status:      models.VacancyStatusOpen,
	}
	if data.AssessmentID != "" {
		rec.AssessmentID = &data.AssessmentID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания вакансии")
		return "", errors.New("ошибка создания вакансии")
	}
	logger.
		WithField("rec_id", id).
		Info("Создана вакансия")
	return id, nil
}

func (i impl) GetByID(companyID, id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.get(companyID, id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	return vacancyapimodels.Convert(*rec), nil
}

func (i impl) Update(companyID, id string, data vacancyapimodels.VacancyData) error {
	if _, err := i.get(companyID, id); err != nil {
		return err
	}
	if err := i.checkDependency(companyID, data); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":       strings.TrimSpace(data.Title),
		"description": data.Description,
		"location":    data.Location,
		"skills":      pq.StringArray(data.Skills),
		"salary_from": data.SalaryFrom,
		"salary_to":   data.SalaryTo,
	}
	if data.AssessmentID != "" {
		updMap["assessment_id"] = data.AssessmentID
	} else {
		updMap["assessment_id"] = nil
	}
	err := i.store.Update(companyID, id, updMap)
	if err != nil {
		i.getLogger(companyID, id, "").WithError(err).Error("ошибка обновления вакансии")
		return errors.New("ошибка обновления вакансии")
	}
	return nil
}

func (i impl) Delete(companyID, id string) error {
	logger := i.getLogger(companyID, id, "")
	if _, err := i.get(companyID, id); err != nil {
		return err
	}
	exist, err := i.applicationStore.ExistByVacancy(id)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки заявок по вакансии")
		return errors.New("ошибка удаления вакансии")
	}
	if exist {
		return apimodels.NewValidationError("по вакансии есть заявки кандидатов, вакансию можно только закрыть")
	}
	err = i.store.Delete(companyID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления вакансии")
		return errors.New("ошибка удаления вакансии")
	}
	return nil
}

func (i impl) List(companyID string, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	return i.list(companyID, filter, vacancyapimodels.Convert)
}

func (i impl) StatusChange(companyID, id, userID string, status models.VacancyStatus) error {
	logger := i.getLogger(companyID, id, userID)
	rec, err := i.get(companyID, id)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	err = i.store.Update(companyID, id, map[string]interface{}{"status": status})
	if err != nil {
		logger.WithError(err).Error("ошибка изменения статуса вакансии")
		return errors.New("ошибка изменения статуса вакансии")
	}
	logger.
		WithField("status", status).
		Info("Изменен статус вакансии")
	return nil
}

func (i impl) PublicList(filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	filter.Statuses = []models.VacancyStatus{models.VacancyStatusOpen}
	return i.list("", filter, vacancyapimodels.ConvertPublic)
}

func (i impl) PublicGetByID(id string) (vacancyapimodels.VacancyView, error) {
	rec, err := i.get("", id)
	if err != nil {
		return vacancyapimodels.VacancyView{}, err
	}
	if !rec.IsOpen() {
		return vacancyapimodels.VacancyView{}, apimodels.NewNotFoundError("вакансия не найдена")
	}
	return vacancyapimodels.ConvertPublic(*rec), nil
}

func (i impl) list(companyID string, filter vacancyapimodels.VacancyFilter, convert func(rec dbmodels.Vacancy) vacancyapimodels.VacancyView) ([]vacancyapimodels.VacancyView, int64, error) {
	rowCount, err := i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []vacancyapimodels.VacancyView{}, rowCount, nil
	}

	list, err := i.store.List(companyID, filter)
	if err != nil {
		i.getLogger(companyID, "", "").WithError(err).Error("ошибка получения списка вакансий")
		return nil, 0, errors.New("ошибка получения списка вакансий")
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) get(companyID, id string) (*dbmodels.Vacancy, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		i.getLogger(companyID, id, "").WithError(err).Error("ошибка получения вакансии")
		return nil, errors.New("ошибка получения вакансии")
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("вакансия не найдена")
	}
	return rec, nil
}

func (i impl) getLogger(companyID, vacancyID, userID string) *log.Entry {
	logger := log.WithField("company_id", companyID)
	if vacancyID != "" {
		logger = logger.WithField("vacancy_id", vacancyID)
	}
	if userID != "" {
		logger = logger.WithField("user_id", userID)
	}
	return logger
}
