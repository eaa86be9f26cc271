package pocket

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterPocketRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewPocketController(service, errs)

	pockets := router.Group("/pockets")
	{
		pockets.GET("", controller.GetAllPockets)
		pockets.GET("/:id", controller.GetPocket)
		pockets.POST("", controller.CreatePocket)
		pockets.PUT("/:id", controller.UpdatePocket)
		pockets.DELETE("/:id", controller.DeletePocket)
	}
}
