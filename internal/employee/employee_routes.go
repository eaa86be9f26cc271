package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
)

func RegisterEmployeeRoutes(router *gin.RouterGroup, service *Service, errs common.ErrorReporter) {
	controller := NewEmployeeController(service, errs)

	employees := router.Group("/employees")
	{
		employees.GET("", controller.GetAllEmployees)
		employees.GET("/:id", controller.GetEmployee)
		employees.GET("/complex/:complexId", controller.GetComplexEmployees)
		employees.GET("/complex/:complexId/person/:personId", controller.GetEmployeeByPerson)
		employees.POST("", controller.CreateEmployee)
		employees.PUT("/:id", controller.UpdateEmployee)
		employees.DELETE("/:id", controller.DeleteEmployee)
	}
}
