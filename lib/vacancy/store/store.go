package vacancystore

import (
	"recruitment-backend/models"
	vacancyapimodels "recruitment-backend/models/api/vacancy"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	// GetByID вакансия компании; при пустом companyID поиск по всем компаниям
	GetByID(companyID, id string) (rec *dbmodels.Vacancy, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	ListCount(companyID string, filter vacancyapimodels.VacancyFilter) (count int64, err error)
	List(companyID string, filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error)
	ExistByAssessment(companyID, assessmentID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id)
	if companyID != "" {
		tx = tx.Where("company_id = ?", companyID)
	}
	err := tx.
		Preload("Company").
		Preload("Author").
		Preload("Assessment").
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
		Model(&dbmodels.Vacancy{}).
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

func (i impl) Delete(companyID, id string) error {
	rec := dbmodels.Vacancy{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			BaseModel: dbmodels.BaseModel{ID: id},
			CompanyID: companyID,
		},
	}
	err := i.db.
		Where("company_id = ?", companyID).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(companyID string, filter vacancyapimodels.VacancyFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Vacancy{})
	i.addFilter(tx, companyID, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества вакансий")
		return 0, errors.New("ошибка получения общего количества вакансий")
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.Model(dbmodels.Vacancy{})
	i.addFilter(tx, companyID, filter)
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.Offset())
	err = tx.
		Order("created_at desc").
		Preload("Company").
		Preload("Author").
		Preload("Assessment").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ExistByAssessment(companyID, assessmentID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Where("assessment_id = ?", assessmentID).
		Where("status = ?", models.VacancyStatusOpen).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID string, filter vacancyapimodels.VacancyFilter) {
	if companyID != "" {
		tx.Where("company_id = ?", companyID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("(title ilike ? or description ilike ?)", search, search)
	}
	if len(filter.Statuses) != 0 {
		tx.Where("status in (?)", filter.Statuses)
	}
	if filter.Location != "" {
		tx.Where("location ilike ?", "%"+filter.Location+"%")
	}
	if filter.Skill != "" {
		tx.Where("? = any(skills)", filter.Skill)
	}
}
