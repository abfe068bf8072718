package initializers

import (
	"os"
	"recruitment-backend/config"

	"github.com/gofiber/contrib/swagger"
	log "github.com/sirupsen/logrus"
)

// SwaggerConfig настройки /swagger; ok = false, если файл документации не сгенерирован (swag init)
func SwaggerConfig() (swagger.Config, bool) {
	filePath := config.Conf.App.SwaggerFile
	if _, err := os.Stat(filePath); err != nil {
		log.WithError(err).
			WithField("file", filePath).
			Warn("Документация api не найдена, /swagger отключен")
		return swagger.Config{}, false
	}
	return swagger.Config{
		Path:     "/swagger",
		FilePath: filePath,
	}, true
}
