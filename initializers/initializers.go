package initializers

import (
	"context"
	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	applicationhandler "recruitment-backend/lib/application"
	applicationhistoryhandler "recruitment-backend/lib/application-history"
	assessmenthandler "recruitment-backend/lib/assessment"
	companyhandler "recruitment-backend/lib/company"
	xlsexport "recruitment-backend/lib/export/xls"
	"recruitment-backend/lib/rbac"
	usershandler "recruitment-backend/lib/users"
	vacancyhandler "recruitment-backend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitLock(ctx)
	// права ролей нужны обработчику пользователей
	rbac.NewHandler()
	xlsexport.NewHandler()
	applicationhistoryhandler.NewHandler()
	usershandler.NewHandler()
	companyhandler.NewHandler()
	vacancyhandler.NewHandler()
	assessmenthandler.NewHandler()
	applicationhandler.NewHandler()
}
