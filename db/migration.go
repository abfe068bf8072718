package db

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Assessment{}, &dbmodels.Question{}, &dbmodels.Choice{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Assessment")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.AssessmentResult{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AssessmentResult")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicationHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicationHistory")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
