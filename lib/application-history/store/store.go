package applicationhistorystore

import (
	applicationapimodels "recruitment-backend/models/api/application"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApplicationHistory) (id string, err error)
	ListCount(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) (count int64, err error)
	List(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) (list []dbmodels.ApplicationHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationHistory) (id string, err error) {
	err = i.db.
		Omit("Vacancy").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.
		Model(dbmodels.ApplicationHistory{}).
		Where("application_id = ?", applicationID)
	if len(filter.ActionTypes) != 0 {
		tx = tx.Where("action_type in (?)", filter.ActionTypes)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества действий по заявке")
		return 0, errors.New("ошибка получения общего количества действий по заявке")
	}
	return rowCount, nil
}

func (i impl) List(applicationID string, filter applicationapimodels.ApplicationHistoryFilter) (list []dbmodels.ApplicationHistory, err error) {
	list = []dbmodels.ApplicationHistory{}
	tx := i.db.
		Model(dbmodels.ApplicationHistory{}).
		Where("application_id = ?", applicationID)
	if len(filter.ActionTypes) != 0 {
		tx = tx.Where("action_type in (?)", filter.ActionTypes)
	}
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.Offset())
	tx.Order("created_at")
	err = tx.Preload("Vacancy").Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
