package assessmentstore

import (
	assessmentapimodels "recruitment-backend/models/api/assessment"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// Create сохраняет тест вместе с вопросами и вариантами ответов
	Create(rec dbmodels.Assessment) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.Assessment, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	// ReplaceQuestions удаляет вопросы теста и сохраняет новые
	ReplaceQuestions(id string, questions []dbmodels.Question) error
	Delete(companyID, id string) error
	ListCount(companyID string, filter assessmentapimodels.AssessmentFilter) (count int64, err error)
	List(companyID string, filter assessmentapimodels.AssessmentFilter) (list []dbmodels.Assessment, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Assessment) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ReplaceQuestions(id string, questions []dbmodels.Question) error {
	// варианты ответов удаляются каскадно
	err := i.db.
		Where("assessment_id = ?", id).
		Delete(&dbmodels.Question{}).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка удаления вопросов теста")
	}
	if len(questions) == 0 {
		return nil
	}
	for idx := range questions {
		questions[idx].AssessmentID = id
	}
	err = i.db.
		Create(&questions).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения вопросов теста")
	}
	return nil
}

func (i impl) Delete(companyID, id string) error {
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Delete(&dbmodels.Assessment{}).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(companyID string, filter assessmentapimodels.AssessmentFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Assessment{})
	i.addFilter(tx, companyID, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества тестов")
		return 0, errors.New("ошибка получения общего количества тестов")
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter assessmentapimodels.AssessmentFilter) (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	tx := i.db.Model(dbmodels.Assessment{})
	i.addFilter(tx, companyID, filter)
	_, limit := filter.GetPage()
	offset := filter.Offset()
	err = tx.
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter assessmentapimodels.AssessmentFilter) {
	tx.Where("company_id = ?", companyID)
	if filter.Search != "" {
		tx.Where("title ilike ?", "%"+filter.Search+"%")
	}
	if filter.TestType != "" {
		tx.Where("test_type = ?", filter.TestType)
	}
}
