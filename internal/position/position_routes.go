package position

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterPositionRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewPositionController(service, errs)

	positions := router.Group("/positions")
	{
		positions.GET("", controller.GetAllPositions)
		positions.GET("/:id", controller.GetPosition)
		positions.POST("", controller.CreatePosition)
		positions.PUT("/:id", controller.UpdatePosition)
		positions.DELETE("/:id", controller.DeletePosition)
	}
}
