package config

import (
	"os"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int    `default:"4194304" env:"APP_BODY_LIMIT"`
		// SwaggerFile результат swag init, без файла /swagger не подключается
		SwaggerFile string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Database struct {
		Host            string `default:"127.0.0.1" env:"DB_HOST"`
		Port            string `default:"5432" env:"DB_PORT"`
		Name            string `default:"recruitment" env:"DB_NAME"`
		User            string `default:"postgres" env:"DB_USER"`
		Password        string `default:"postgres" env:"DB_PASSWORD"`
		SSLMode         string `default:"disable" env:"DB_SSL_MODE"`
		MaxOpenConns    int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
		MaxIdleConns    int    `default:"5" env:"DB_MAX_IDLE_CONNS"`
		ConnLifetimeMin int    `default:"30" env:"DB_CONN_LIFETIME_MIN"`
		MigrateOnStart  *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode       *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
		AdminEmail            string `default:"" env:"AUTH_ADMIN_EMAIL"`
		AdminPassword         string `default:"" env:"AUTH_ADMIN_PASSWORD"`
	}
	Redis struct {
		Enabled  *bool  `default:"false" env:"REDIS_ENABLED"`
		Addr     string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Recruitment struct {
		LockWaitSec         int     `default:"5" env:"RECRUITMENT_LOCK_WAIT_SEC"`
		LockTTLSec          int     `default:"30" env:"RECRUITMENT_LOCK_TTL_SEC"`
		DefaultPassingScore float64 `default:"0.6" env:"RECRUITMENT_DEFAULT_PASSING_SCORE"`
	}
	Report struct {
		FontDir string `default:"" env:"REPORT_FONT_DIR"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// переменные из .env не перекрывают уже заданные в окружении
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("ошибка чтения файла .env")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
