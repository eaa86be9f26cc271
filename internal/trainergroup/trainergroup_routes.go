package trainergroup

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterTrainerGroupRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewTrainerGroupController(service, errs)

	enrollments := router.Group("/trainer-groups")
	{
		enrollments.GET("", controller.GetAllTrainerGroups)
		enrollments.GET("/:id", controller.GetTrainerGroup)
		enrollments.GET("/trainer/:trainerId", controller.GetByTrainer)
		enrollments.GET("/group/:groupId", controller.GetByGroup)
		enrollments.POST("", controller.CreateTrainerGroup)
		enrollments.DELETE("/:id", controller.DeleteTrainerGroup)
	}
}
