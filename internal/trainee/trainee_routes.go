package trainee

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterTraineeRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewTraineeController(service, errs)

	trainees := router.Group("/trainees")
	{
		trainees.GET("", controller.GetAllTrainees)
		trainees.GET("/:id", controller.GetTrainee)
		trainees.GET("/complex/:complexId", controller.GetComplexTrainees)
		trainees.GET("/complex/:complexId/person/:personId", controller.GetTraineeByPerson)
		trainees.POST("", controller.CreateTrainee)
		trainees.PUT("/:id", controller.UpdateTrainee)
		trainees.DELETE("/:id", controller.DeleteTrainee)
	}
}
