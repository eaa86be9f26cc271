package sportevent

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterSportEventRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewSportEventController(service, errs)

	events := router.Group("/sport-events")
	{
		events.GET("", controller.GetAllSportEvents)
		events.GET("/:id", controller.GetSportEvent)
		events.GET("/complex/:complexId", controller.GetComplexSportEvents)
		events.POST("", controller.CreateSportEvent)
		events.PUT("/:id", controller.UpdateSportEvent)
		events.DELETE("/:id", controller.DeleteSportEvent)
	}
}
