package participant

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterParticipantRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewParticipantController(service, errs)

	participants := router.Group("/event-participants")
	{
		participants.GET("", controller.GetAllParticipants)
		participants.GET("/:id", controller.GetParticipant)
		participants.GET("/event/:eventId", controller.GetEventParticipants)
		participants.GET("/trainee/:traineeId", controller.GetTraineeParticipations)
		participants.POST("", controller.CreateParticipant)
		participants.DELETE("/:id", controller.DeleteParticipant)
	}
}
