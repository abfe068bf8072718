package applicationstore

import (
	"recruitment-backend/models"
	applicationapimodels "recruitment-backend/models/api/application"
	dbmodels "recruitment-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDuplicate = errors.New("кандидат уже откликнулся на вакансию")

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	// GetForUpdate блокирует строку заявки до конца транзакции (SELECT ... FOR UPDATE)
	GetForUpdate(id string) (rec *dbmodels.Application, err error)
	// SaveState сохраняет статус, историю этапов и дату решения
	SaveState(rec dbmodels.Application) error
	ExistByCandidate(candidateID, vacancyID string) (bool, error)
	ExistByVacancy(vacancyID string) (bool, error)
	ListCount(companyID string, filter applicationapimodels.ApplicationFilter) (count int64, err error)
	List(companyID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error)
	ListByCandidate(candidateID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, count int64, err error)
	ListForExport(companyID string, request applicationapimodels.ExportRequest) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", ErrDuplicate
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Candidate").
		Preload("Vacancy").
		Preload("Vacancy.Company").
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

func (i impl) GetForUpdate(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
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

func (i impl) SaveState(rec dbmodels.Application) error {
	updMap := map[string]interface{}{
		"status":        rec.Status,
		"stage_history": rec.StageHistory,
		"decided_at":    rec.DecidedAt,
	}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", rec.ID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ExistByCandidate(candidateID, vacancyID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Where("vacancy_id = ?", vacancyID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) ExistByVacancy(vacancyID string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Count(&rowCount).
		Error
	if err != nil {
		return false, err
	}
	return rowCount > 0, nil
}

func (i impl) ListCount(companyID string, filter applicationapimodels.ApplicationFilter) (count int64, err error) {
	var rowCount int64
	tx := i.db.Model(dbmodels.Application{})
	i.addFilter(tx, companyID, filter.VacancyID, filter.Statuses, filter.Search)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества заявок")
		return 0, errors.New("ошибка получения общего количества заявок")
	}
	return rowCount, nil
}

func (i impl) List(companyID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(dbmodels.Application{})
	i.addFilter(tx, companyID, filter.VacancyID, filter.Statuses, filter.Search)
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.Offset())
	err = tx.
		Order("applications.created_at desc").
		Preload("Candidate").
		Preload("Vacancy").
		Preload("Vacancy.Company").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.Application, count int64, err error) {
	list = []dbmodels.Application{}
	tx := i.db.
		Model(dbmodels.Application{}).
		Where("candidate_id = ?", candidateID)
	if len(filter.Statuses) != 0 {
		tx.Where("status in (?)", filter.Statuses)
	}
	err = tx.Count(&count).Error
	if err != nil {
		return nil, 0, err
	}
	_, limit := filter.GetPage()
	tx.Limit(limit).Offset(filter.Offset())
	err = tx.
		Order("created_at desc").
		Preload("Vacancy").
		Preload("Vacancy.Company").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func (i impl) ListForExport(companyID string, request applicationapimodels.ExportRequest) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(dbmodels.Application{})
	i.addFilter(tx, companyID, request.VacancyID, request.Statuses, "")
	err = tx.
		Order("applications.created_at").
		Preload("Candidate").
		Preload("Vacancy").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, companyID, vacancyID string, statuses []models.ApplicationStatus, search string) {
	tx.Joins("join vacancies on vacancies.id = applications.vacancy_id").
		Where("vacancies.company_id = ?", companyID)
	if vacancyID != "" {
		tx.Where("applications.vacancy_id = ?", vacancyID)
	}
	if len(statuses) != 0 {
		tx.Where("applications.status in (?)", statuses)
	}
	if search != "" {
		search = "%" + search + "%"
		tx.Joins("join users as candidates on candidates.id = applications.candidate_id").
			Where("(candidates.email ilike ? or candidates.first_name ilike ? or candidates.last_name ilike ?)", search, search, search)
	}
}
