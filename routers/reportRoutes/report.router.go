package reportRoutes

import (
	"github.com/gofiber/fiber/v2"
	reportController "github.com/pattanan23/elearnnig-it/controllers/report"
	"github.com/pattanan23/elearnnig-it/validators"
	reportValidator "github.com/pattanan23/elearnnig-it/validators/report"
)

func SetupReportRoutes(api fiber.Router, ctrl *reportController.ReportController) {
	api.Post("/reports", reportValidator.CreateReport(), ctrl.CreateReport)

	reportGroup := api.Group("/reports")
	reportGroup.Get("/all", reportValidator.ListReports(), ctrl.ListReports)
	reportGroup.Get("/user/:userId", validators.IDParam("userId"), ctrl.ListUserReports)
	reportGroup.Put("/:reportId/status", validators.IDParam("reportId"), reportValidator.UpdateStatus(), ctrl.UpdateStatus)
}
