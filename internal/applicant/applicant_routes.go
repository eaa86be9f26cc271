package applicant

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterApplicantRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewApplicantController(service, errs)

	applicants := router.Group("/applicants")
	{
		applicants.GET("", controller.GetAllApplicants)
		applicants.GET("/:id", controller.GetApplicant)
		applicants.GET("/vacancy/:vacancyId", controller.GetVacancyApplicants)
		applicants.GET("/person/:personId", controller.GetApplicantByPerson)
		applicants.POST("", controller.CreateApplicant)
		applicants.DELETE("/:id", controller.DeleteApplicant)
	}
}
