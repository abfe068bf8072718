package usersstore

import (
	usersapimodels "recruitment-backend/models/api/users"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(id string) (rec *dbmodels.User, err error)
	FindByEmail(email string) (rec *dbmodels.User, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter usersapimodels.UserFilter) (count int64, err error)
	List(filter usersapimodels.UserFilter) (list []dbmodels.User, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", id).
		Preload("Company").
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

func (i impl) FindByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Model(&dbmodels.User{}).
		Where("lower(email) = lower(?)", email).
		Preload("Company").
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
		Model(&dbmodels.User{}).
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

func (i impl) ListCount(filter usersapimodels.UserFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.User{})
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества пользователей")
		return 0, errors.New("ошибка получения общего количества пользователей")
	}
	return rowCount, nil
}

func (i impl) List(filter usersapimodels.UserFilter) (list []dbmodels.User, err error) {
	list = []dbmodels.User{}
	tx := i.db.Model(dbmodels.User{})
	i.addFilter(tx, filter)
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.Offset())
	err = tx.
		Order("last_name, first_name").
		Preload("Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter usersapimodels.UserFilter) {
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx.Where("(email ilike ? or first_name ilike ? or last_name ilike ?)", search, search, search)
	}
	if filter.Role != "" {
		tx.Where("role = ?", filter.Role)
	}
	if filter.CompanyID != "" {
		tx.Where("company_id = ?", filter.CompanyID)
	}
}
