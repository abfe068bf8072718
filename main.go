package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"recruitment-backend/config"
	apiv1 "recruitment-backend/controllers/v1"
	publicapi "recruitment-backend/controllers/v1/public"
	"recruitment-backend/db"
	"recruitment-backend/fiberlog"
	"recruitment-backend/initializers"
	"recruitment-backend/middleware"
	"recruitment-backend/models"
	apimodels "recruitment-backend/models/api"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())

	if swaggerCfg, ok := initializers.SwaggerConfig(); ok {
		app.Use(swagger.New(swaggerCfg))
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(requestid.New())
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("БД недоступна"))
		}
		return c.JSON(apimodels.NewResponse(nil))
	})
	apiv1.InitAuthApiRouters(apiV1)

	//публичные вакансии
	public := fiber.New()
	apiV1.Mount("/public", public)
	publicapi.InitPublicVacancyRouters(public)

	//space
	space := fiber.New()
	apiV1.Mount("/space", space)
	space.Use(middleware.AuthorizationRequired())
	space.Use(middleware.CompanyRequired())
	space.Use(middleware.RbacMiddleware())
	apiv1.InitVacancyApiRouters(space)
	apiv1.InitAssessmentApiRouters(space)
	apiv1.InitApplicationApiRouters(space)

	//кандидат
	candidate := fiber.New()
	apiV1.Mount("/candidate", candidate)
	candidate.Use(middleware.AuthorizationRequired())
	candidate.Use(middleware.RoleRequired(models.CandidateRole))
	candidate.Use(middleware.RbacMiddleware())
	apiv1.InitCandidateApiRouters(candidate)

	//админка
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AuthorizationRequired())
	admin.Use(middleware.AdminRequired())
	admin.Use(middleware.RbacMiddleware())
	apiv1.InitCompanyApiRouters(admin)
	apiv1.InitUsersApiRouters(admin)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
