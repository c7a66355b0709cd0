// Package routers assembles the HTTP application from its dependencies.
package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pattanan23/elearnnig-it/certificate"
	"github.com/pattanan23/elearnnig-it/config"
	adminController "github.com/pattanan23/elearnnig-it/controllers/admin"
	authController "github.com/pattanan23/elearnnig-it/controllers/auth"
	certificateController "github.com/pattanan23/elearnnig-it/controllers/certificate"
	courseController "github.com/pattanan23/elearnnig-it/controllers/course"
	progressController "github.com/pattanan23/elearnnig-it/controllers/progress"
	ratingController "github.com/pattanan23/elearnnig-it/controllers/rating"
	reportController "github.com/pattanan23/elearnnig-it/controllers/report"
	"github.com/pattanan23/elearnnig-it/mailer"
	"github.com/pattanan23/elearnnig-it/media"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	adminRoutes "github.com/pattanan23/elearnnig-it/routers/adminRoutes"
	authRoutes "github.com/pattanan23/elearnnig-it/routers/authRoutes"
	certificateRoutes "github.com/pattanan23/elearnnig-it/routers/certificateRoutes"
	courseRoutes "github.com/pattanan23/elearnnig-it/routers/courseRoutes"
	progressRoutes "github.com/pattanan23/elearnnig-it/routers/progressRoutes"
	ratingRoutes "github.com/pattanan23/elearnnig-it/routers/ratingRoutes"
	reportRoutes "github.com/pattanan23/elearnnig-it/routers/reportRoutes"
)

type Deps struct {
	Cfg      *config.Config
	Store    *repository.Store
	Mailer   mailer.Mailer
	Uploader *media.Uploader
	Renderer *certificate.Renderer
}

// NewApp builds the fiber application with every route mounted.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "elearning-it",
		BodyLimit:    1024 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Request-ID",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestId}\n",
	}))

	app.Static(media.PublicPrefix, deps.Cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	api := app.Group("/api")
	authRoutes.SetupAuthRoutes(api, authController.NewAuthController(deps.Store, deps.Cfg, deps.Mailer))
	courseRoutes.SetupCourseRoutes(api, courseController.NewCourseController(deps.Store, deps.Cfg, deps.Uploader))
	progressRoutes.SetupProgressRoutes(api, progressController.NewProgressController(deps.Store))
	ratingRoutes.SetupRatingRoutes(api, ratingController.NewRatingController(deps.Store))
	certificateRoutes.SetupCertificateRoutes(api, certificateController.NewCertificateController(deps.Store, deps.Renderer))
	reportRoutes.SetupReportRoutes(api, reportController.NewReportController(deps.Store))
	adminRoutes.SetupAdminRoutes(api, adminController.NewAdminController(deps.Store, deps.Cfg))

	return app
}
