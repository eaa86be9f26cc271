package sportgroup

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterSportGroupRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewSportGroupController(service, errs)

	groups := router.Group("/sport-groups")
	{
		groups.GET("", controller.GetAllSportGroups)
		groups.GET("/:id", controller.GetSportGroup)
		groups.POST("", controller.CreateSportGroup)
		groups.PUT("/:id", controller.UpdateSportGroup)
		groups.DELETE("/:id", controller.DeleteSportGroup)
	}
}
