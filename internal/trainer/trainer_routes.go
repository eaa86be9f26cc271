package trainer

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterTrainerRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewTrainerController(service, errs)

	trainers := router.Group("/trainers")
	{
		trainers.GET("", controller.GetAllTrainers)
		trainers.GET("/:id", controller.GetTrainer)
		trainers.GET("/complex/:complexId", controller.GetComplexTrainers)
		trainers.GET("/complex/:complexId/employee/:employeeId", controller.GetTrainerByEmployee)
		trainers.POST("", controller.CreateTrainer)
		trainers.PUT("/:id", controller.UpdateTrainer)
		trainers.DELETE("/:id", controller.DeleteTrainer)
	}
}
