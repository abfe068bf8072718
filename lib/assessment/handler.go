package assessmenthandler

import (
	"recruitment-backend/db"
	assessmentresultstore "recruitment-backend/lib/application/result-store"
	assessmentstore "recruitment-backend/lib/assessment/store"
	vacancystore "recruitment-backend/lib/vacancy/store"
	apimodels "recruitment-backend/models/api"
	assessmentapimodels "recruitment-backend/models/api/assessment"
	dbmodels "recruitment-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(companyID string, data assessmentapimodels.AssessmentData) (id string, err error)
	Update(companyID, id string, data assessmentapimodels.AssessmentData) error
	GetByID(companyID, id string) (assessmentapimodels.AssessmentView, error)
	Delete(companyID, id string) error
	List(companyID string, filter assessmentapimodels.AssessmentFilter) ([]assessmentapimodels.AssessmentView, int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        assessmentstore.NewInstance(db.DB),
		newStore:     assessmentstore.NewInstance,
		vacancyStore: vacancystore.NewInstance(db.DB),
		resultStore:  assessmentresultstore.NewInstance(db.DB),
		withTx: func(fn func(tx *gorm.DB) error) error {
			return db.DB.Transaction(fn)
		},
	}
}

type impl struct {
	store        assessmentstore.Provider
	newStore     func(tx *gorm.DB) assessmentstore.Provider
	vacancyStore vacancystore.Provider
	resultStore  assessmentresultstore.Provider
	withTx       func(fn func(tx *gorm.DB) error) error
}

func (i impl) Create(companyID string, data assessmentapimodels.AssessmentData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	rec := data.ToDB(companyID)
	rec.Title = strings.TrimSpace(rec.Title)
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания теста")
		return "", errors.New("ошибка создания теста")
	}
	logger.
		WithField("rec_id", id).
		Info("Создан тест")
	return id, nil
}

func (i impl) Update(companyID, id string, data assessmentapimodels.AssessmentData) error {
	logger := log.WithField("company_id", companyID).WithField("assessment_id", id)
	if _, err := i.get(companyID, id); err != nil {
		return err
	}
	// вопросы теста, по которому уже есть ответы, не меняются
	submitted, err := i.resultStore.ExistByAssessment(id)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки результатов теста")
		return errors.New("ошибка обновления теста")
	}
	if submitted {
		return apimodels.NewValidationError("тест уже пройден кандидатами, изменение невозможно")
	}
	rec := data.ToDB(companyID)
	updMap := map[string]interface{}{
		"title":         strings.TrimSpace(rec.Title),
		"description":   rec.Description,
		"test_type":     rec.TestType,
		"duration_min":  rec.DurationMin,
		"passing_score": rec.PassingScore,
	}
	err = i.withTx(func(tx *gorm.DB) error {
		store := i.newStore(tx)
		if err := store.Update(companyID, id, updMap); err != nil {
			return err
		}
		return store.ReplaceQuestions(id, rec.Questions)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления теста")
		return errors.New("ошибка обновления теста")
	}
	return nil
}

func (i impl) GetByID(companyID, id string) (assessmentapimodels.AssessmentView, error) {
	rec, err := i.get(companyID, id)
	if err != nil {
		return assessmentapimodels.AssessmentView{}, err
	}
	return assessmentapimodels.Convert(*rec), nil
}

func (i impl) Delete(companyID, id string) error {
	logger := log.WithField("company_id", companyID).WithField("assessment_id", id)
	if _, err := i.get(companyID, id); err != nil {
		return err
	}
	used, err := i.vacancyStore.ExistByAssessment(companyID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки использования теста")
		return errors.New("ошибка удаления теста")
	}
	if used {
		return apimodels.NewValidationError("тест используется в вакансии")
	}
	err = i.store.Delete(companyID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления теста")
		return errors.New("ошибка удаления теста")
	}
	return nil
}

func (i impl) List(companyID string, filter assessmentapimodels.AssessmentFilter) ([]assessmentapimodels.AssessmentView, int64, error) {
	rowCount, err := i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	if filter.PastEnd(rowCount) {
		return []assessmentapimodels.AssessmentView{}, rowCount, nil
	}

	list, err := i.store.List(companyID, filter)
	if err != nil {
		log.WithField("company_id", companyID).WithError(err).Error("ошибка получения списка тестов")
		return nil, 0, errors.New("ошибка получения списка тестов")
	}
	result := make([]assessmentapimodels.AssessmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, assessmentapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

func (i impl) get(companyID, id string) (*dbmodels.Assessment, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		log.WithField("company_id", companyID).WithField("assessment_id", id).WithError(err).Error("ошибка получения теста")
		return nil, errors.New("ошибка получения теста")
	}
	if rec == nil {
		return nil, apimodels.NewNotFoundError("тест не найден")
	}
	return rec, nil
}
