package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки логирования запросов api
type Config struct {
	// Logger nil пишет в стандартный логгер logrus
	Logger *logrus.Logger
	// Tags поля записи, см. Tag*
	Tags []string
	// SkipPaths запросы с таким окончанием пути не логируются (проверки доступности)
	SkipPaths []string
}

// DefaultTags поля записи о запросе к api подбора
var DefaultTags = []string{
	TagBody,
	TagMethod,
	TagPath,
	TagStatus,
	TagLatency,
	TagUserID,
	RequestID,
}

var ConfigDefault = Config{
	Tags:      DefaultTags,
	SkipPaths: []string{"/health"},
}
