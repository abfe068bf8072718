package db

import (
	"fmt"
	"recruitment-backend/config"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect подключение к postgres по настройкам config.Conf.Database, повторный вызов ничего не делает
func Connect() error {
	if DB != nil {
		return nil
	}
	cfg := config.Conf.Database
	debugMode := cfg.DebugMode != nil && *cfg.DebugMode

	gormConfig := &gorm.Config{Logger: gorm_logrus.New()}
	if debugMode {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	conn, err := gorm.Open(postgres.Open(dsn(cfg.Host, cfg.Port, cfg.Name, cfg.User, cfg.Password, cfg.SSLMode)), gormConfig)
	if err != nil {
		return errors.Wrap(err, "ошибка подключения к БД")
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return errors.Wrap(err, "ошибка получения пула соединений БД")
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnLifetimeMin > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnLifetimeMin) * time.Minute)
	}

	if debugMode {
		conn = conn.Debug()
	}
	DB = conn
	if cfg.MigrateOnStart != nil && *cfg.MigrateOnStart {
		if err = AutoMigrateDB(); err != nil {
			return errors.Wrap(err, "ошибка миграции БД")
		}
	}
	log.
		WithField("host", cfg.Host).
		WithField("database", cfg.Name).
		Info("Сервис успешно подключен к БД")
	return nil
}

func dsn(host, port, database, user, pass, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s", host, port, user, database, sslMode, pass)
}

// PingDB проверка соединения для /health
func PingDB() error {
	if DB == nil {
		return errors.New("нет подключения к БД")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
