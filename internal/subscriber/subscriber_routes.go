package subscriber

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterSubscriberRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewSubscriberController(service, errs)

	subs := router.Group("/event-subscribers")
	{
		subs.GET("", controller.GetAllSubscribers)
		subs.GET("/:id", controller.GetSubscriber)
		subs.POST("", controller.CreateSubscriber)
		subs.PUT("/:id", controller.UpdateSubscriber)
		subs.DELETE("/:id", controller.DeleteSubscriber)
	}
}
