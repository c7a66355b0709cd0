package certificateController

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/certificate"
	"github.com/pattanan23/elearnnig-it/middleware"
	"github.com/pattanan23/elearnnig-it/repository"
	"github.com/pattanan23/elearnnig-it/validators"
	certificateValidator "github.com/pattanan23/elearnnig-it/validators/certificate"
)

type CertificateController struct {
	Store    *repository.Store
	Renderer *certificate.Renderer
	Now      func() time.Time
}

func NewCertificateController(store *repository.Store, renderer *certificate.Renderer) *CertificateController {
	return &CertificateController{Store: store, Renderer: renderer, Now: time.Now}
}

func (cc *CertificateController) GetCertificate(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	view, err := cc.Store.CertificateView(c.UserContext(), key.UserID, key.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully.", fiber.Map{
		"user_id":     view.UserID,
		"course_id":   view.CourseID,
		"full_name":   view.FullName(),
		"course_name": view.CourseName,
		"course_code": view.CourseCode,
		"issue_date":  view.IssueDate.Format("2006-01-02"),
	})
}

func (cc *CertificateController) CheckCertificate(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	cert, err := cc.Store.GetCertificate(c.UserContext(), key.UserID, key.CourseID)
	if apperror.Is(err, apperror.KindNotFound) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate not issued yet.", fiber.Map{
			"has_certificate": false,
			"issue_date":      nil,
		})
	}
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate found.", fiber.Map{
		"has_certificate": true,
		"issue_date":      cert.IssueDate.Format("2006-01-02"),
	})
}

// SaveCertificate issues once; later calls report the original date.
func (cc *CertificateController) SaveCertificate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCertificate").(*certificateValidator.SaveCertificateRequest)

	date := now.With(cc.Now()).BeginningOfDay()
	if reqData.IssueDate != nil {
		date = *reqData.IssueDate
	}

	issued, cert, err := cc.Store.IssueCertificateDate(c.UserContext(), reqData.UserID, reqData.CourseID, date)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := fiber.Map{
		"issued":     issued,
		"issue_date": cert.IssueDate.Format("2006-01-02"),
	}
	if issued {
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully.", data)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued.", data)
}

func (cc *CertificateController) CertificatePDF(c *fiber.Ctx) error {
	key := c.Locals("validatedUserCourse").(*validators.UserCourse)

	view, err := cc.Store.CertificateView(c.UserContext(), key.UserID, key.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	var buf bytes.Buffer
	err = cc.Renderer.Render(&buf, certificate.Data{
		FullName:   view.FullName(),
		CourseName: view.CourseName,
		CourseCode: view.CourseCode,
		IssueDate:  view.IssueDate,
	})
	if err != nil {
		return middleware.ErrorResponse(c, apperror.Server(err, "Failed to render certificate!"))
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=certificate_%d_%d.pdf", key.UserID, key.CourseID))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
