package assessmentresultstore

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.AssessmentResult) (id string, err error)
	GetByApplication(applicationID string) (rec *dbmodels.AssessmentResult, err error)
	GetByApplications(applicationIDs []string) (map[string]dbmodels.AssessmentResult, error)
	Update(id string, updMap map[string]interface{}) error
	ExistByAssessment(assessmentID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssessmentResult) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByApplication(applicationID string) (*dbmodels.AssessmentResult, error) {
	rec := dbmodels.AssessmentResult{}
	err := i.db.
		Model(&dbmodels.AssessmentResult{}).
		Where("application_id = ?", applicationID).
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

func (i impl) GetByApplications(applicationIDs []string) (map[string]dbmodels.AssessmentResult, error) {
	result := map[string]dbmodels.AssessmentResult{}
	if len(applicationIDs) == 0 {
		return result, nil
	}
	list := []dbmodels.AssessmentResult{}
	err := i.db.
		Model(&dbmodels.AssessmentResult{}).
		Where("application_id in (?)", applicationIDs).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	for _, rec := range list {
		result[rec.ApplicationID] = rec
	}
	return result, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.AssessmentResult{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ExistByAssessment(assessmentID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.AssessmentResult{}).
		Where("assessment_id = ?", assessmentID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}
