package db

import (
	"recruitment-backend/config"
	usersstore "recruitment-backend/lib/users/store"
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
}

func addAdmin() {
	if config.Conf.Auth.AdminEmail == "" {
		log.Warn("администратор не добавлен, отсутствует настройка AUTH_ADMIN_EMAIL")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Auth.AdminEmail)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	password, err := authutils.HashPassword(config.Conf.Auth.AdminPassword)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		Email:     config.Conf.Auth.AdminEmail,
		Password:  password,
		FirstName: "Администратор",
		Role:      models.AdminRole,
		IsActive:  true,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}
