package vacancy

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterVacancyRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewVacancyController(service, errs)

	vacancies := router.Group("/vacancies")
	{
		vacancies.GET("", controller.GetAllVacancies)
		vacancies.GET("/:id", controller.GetVacancy)
		vacancies.GET("/complex/:complexId", controller.GetComplexVacancies)
		vacancies.POST("", controller.CreateVacancy)
		vacancies.PUT("/:id", controller.UpdateVacancy)
		vacancies.DELETE("/:id", controller.DeleteVacancy)
	}
}
