package sporttype

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterSportTypeRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewSportTypeController(service, errs)

	types := router.Group("/sport-types")
	{
		types.GET("", controller.GetAllSportTypes)
		types.GET("/:id", controller.GetSportType)
		types.POST("", controller.CreateSportType)
		types.PUT("/:id", controller.UpdateSportType)
		types.DELETE("/:id", controller.DeleteSportType)
	}
}
