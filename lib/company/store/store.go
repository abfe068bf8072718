package companystore

import (
	companyapimodels "recruitment-backend/models/api/company"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Company) (id string, err error)
	GetByID(id string) (rec *dbmodels.Company, err error)
	FindByName(name string) (rec *dbmodels.Company, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	ListCount(filter companyapimodels.CompanyFilter) (count int64, err error)
	List(filter companyapimodels.CompanyFilter) (list []dbmodels.Company, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Company) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("id = ?", id).
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

func (i impl) FindByName(name string) (*dbmodels.Company, error) {
	rec := dbmodels.Company{}
	err := i.db.
		Model(&dbmodels.Company{}).
		Where("lower(name) = lower(?)", name).
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Company{}).
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

func (i impl) Delete(id string) error {
	rec := dbmodels.Company{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	err := i.db.
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListCount(filter companyapimodels.CompanyFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Company{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества компаний")
		return 0, errors.New("ошибка получения общего количества компаний")
	}
	return rowCount, nil
}

func (i impl) List(filter companyapimodels.CompanyFilter) (list []dbmodels.Company, err error) {
	list = []dbmodels.Company{}
	tx := i.db.Model(dbmodels.Company{})
	i.addFilter(tx, filter)
	_, limit := filter.GetPage()
	offset := filter.Offset()
	err = tx.
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter companyapimodels.CompanyFilter) {
	if filter.Search != "" {
		tx.Where("name ilike ?", "%"+filter.Search+"%")
	}
}
