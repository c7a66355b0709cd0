package reportController

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	reportValidator "github.com/pattanan23/elearnnig-it/validators/report"
)

type ReportController struct {
	Store *repository.Store
}

func NewReportController(store *repository.Store) *ReportController {
	return &ReportController{Store: store}
}

func (rc *ReportController) CreateReport(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReport").(*reportValidator.CreateReportRequest)

	report, err := rc.Store.CreateReport(c.UserContext(), reqData.UserID, reqData.Category, reqData.ReportMess)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Report submitted successfully.", report)
}

func (rc *ReportController) ListReports(c *fiber.Ctx) error {
	status := c.Locals("validatedStatus").(string)

	reports, err := rc.Store.ListReports(c.UserContext(), status)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully.", reports)
}

func (rc *ReportController) ListUserReports(c *fiber.Ctx) error {
	userID := c.Locals("validatedID").(uint)

	reports, err := rc.Store.ListUserReports(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reports fetched successfully.", reports)
}

func (rc *ReportController) UpdateStatus(c *fiber.Ctx) error {
	reportID := c.Locals("validatedID").(uint)
	status := c.Locals("validatedStatus").(string)

	report, err := rc.Store.UpdateReportStatus(c.UserContext(), reportID, status)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Report status updated.", report)
}
