package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

const (
	paramPersonID   = "personId"
	queryPositionID = "positionId"
)

type EmployeeController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewEmployeeController(service *Service, errs common.ErrorReporter) *EmployeeController {
	return &EmployeeController{service: service, errs: errs}
}

type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" binding:"required,max=100"`
	LastName   string `json:"lastName" binding:"required,max=100"`
	ComplexID  uint   `json:"complexId" binding:"required"`
	PersonID   string `json:"personId" binding:"required,max=50"`
	PositionID uint   `json:"positionId" binding:"required"`
}

type UpdateEmployeeRequest struct {
	PositionID uint `json:"positionId" binding:"required"`
}

func (r CreateEmployeeRequest) toModel() *Employee {
	return &Employee{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		ComplexID:  r.ComplexID,
		PersonID:   r.PersonID,
		PositionID: r.PositionID,
	}
}

// @Summary      Get all employees
// @Tags         Employees
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees [get]
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ec.service.List(c.Request.Context())
	if err != nil {
		ec.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employees retrieved successfully", employees)
}

// GetComplexEmployees lists one complex's staff, optionally narrowed by ?positionId=.
//
// @Summary      Get complex employees
// @Tags         Employees
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        positionId  query  int  false  "Narrow to one position"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees/complex/{complexId} [get]
func (ec *EmployeeController) GetComplexEmployees(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	var employees []Employee
	if _, ok := c.GetQuery(queryPositionID); ok {
		positionID, perr := common.ParseUintQuery(c, queryPositionID)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		employees, err = ec.service.ListByPosition(c.Request.Context(), complexID, positionID)
	} else {
		employees, err = ec.service.ListByComplex(c.Request.Context(), complexID)
	}
	if err != nil {
		ec.errs.Respond(c, "list by complex", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employees retrieved successfully", employees)
}

// @Summary      Get employee by person
// @Tags         Employees
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        personId  path  string  true  "External person ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees/complex/{complexId}/person/{personId} [get]
func (ec *EmployeeController) GetEmployeeByPerson(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	e, err := ec.service.GetByPerson(c.Request.Context(), complexID, c.Param(paramPersonID))
	if err != nil {
		ec.errs.Respond(c, "get by person", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employee retrieved successfully", e)
}

// @Summary      Get employee
// @Tags         Employees
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees/{id} [get]
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	e, err := ec.service.Get(c.Request.Context(), id)
	if err != nil {
		ec.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employee retrieved successfully", e)
}

// @Summary      Create employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        request  body  CreateEmployeeRequest  true  "Create employee payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees [post]
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	e, err := ec.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		ec.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Employee created successfully", e)
}

// @Summary      Update employee
// @Tags         Employees
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateEmployeeRequest  true  "Update employee payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees/{id} [put]
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateEmployeeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	e, err := ec.service.Update(c.Request.Context(), id, Patch{PositionID: req.PositionID})
	if err != nil {
		ec.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employee updated successfully", e)
}

// @Summary      Delete employee
// @Tags         Employees
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /employees/{id} [delete]
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	e, err := ec.service.Delete(c.Request.Context(), id)
	if err != nil {
		ec.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Employee deleted successfully", e)
}
