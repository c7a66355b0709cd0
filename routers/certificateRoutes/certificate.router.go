package certificateRoutes

import (
	"github.com/gofiber/fiber/v2"
	certificateController "github.com/pattanan23/elearnnig-it/controllers/certificate"
	"github.com/pattanan23/elearnnig-it/validators"
	certificateValidator "github.com/pattanan23/elearnnig-it/validators/certificate"
)

func SetupCertificateRoutes(api fiber.Router, ctrl *certificateController.CertificateController) {
	api.Get("/get_certificate/:userId/:courseId", validators.UserCourseParams(), ctrl.CheckCertificate)

	certGroup := api.Group("/certificates")
	// static segments first so they are not captured as :userId
	certGroup.Post("/save", certificateValidator.SaveCertificate(), ctrl.SaveCertificate)
	certGroup.Get("/pdf/:userId/:courseId", validators.UserCourseParams(), ctrl.CertificatePDF)
	certGroup.Get("/:userId/:courseId", validators.UserCourseParams(), ctrl.GetCertificate)
}
