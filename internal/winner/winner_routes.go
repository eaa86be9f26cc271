package winner

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterWinnerRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewWinnerController(service, errs)

	winners := router.Group("/event-winners")
	{
		winners.GET("", controller.GetAllWinners)
		winners.GET("/:id", controller.GetWinner)
		winners.GET("/event/:eventId", controller.GetEventWinners)
		winners.GET("/participant/:participantId", controller.GetWinnerByParticipant)
		winners.POST("", controller.CreateWinner)
		winners.DELETE("/:id", controller.DeleteWinner)
	}
}
