package trainer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

const (
	paramEmployeeID  = "employeeId"
	querySportTypeID = "sportTypeId"
)

type TrainerController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewTrainerController(service *Service, errs common.ErrorReporter) *TrainerController {
	return &TrainerController{service: service, errs: errs}
}

type CreateTrainerRequest struct {
	ComplexID   uint `json:"complexId" binding:"required"`
	EmployeeID  uint `json:"employeeId" binding:"required"`
	SportTypeID uint `json:"sportTypeId" binding:"required"`
}

type UpdateTrainerRequest struct {
	SportTypeID uint `json:"sportTypeId" binding:"required"`
}

func (r CreateTrainerRequest) toModel() *Trainer {
	return &Trainer{ComplexID: r.ComplexID, EmployeeID: r.EmployeeID, SportTypeID: r.SportTypeID}
}

// @Summary      Get all trainers
// @Tags         Trainers
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers [get]
func (tc *TrainerController) GetAllTrainers(c *gin.Context) {
	trainers, err := tc.service.List(c.Request.Context())
	if err != nil {
		tc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainers retrieved successfully", trainers)
}

// GetComplexTrainers lists a complex's trainers, optionally narrowed by ?sportTypeId=.
//
// @Summary      Get complex trainers
// @Tags         Trainers
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        sportTypeId  query  int  false  "Narrow to one sport type"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers/complex/{complexId} [get]
func (tc *TrainerController) GetComplexTrainers(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	var trainers []Trainer
	if _, ok := c.GetQuery(querySportTypeID); ok {
		sportTypeID, perr := common.ParseUintQuery(c, querySportTypeID)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		trainers, err = tc.service.ListBySportType(c.Request.Context(), complexID, sportTypeID)
	} else {
		trainers, err = tc.service.ListByComplex(c.Request.Context(), complexID)
	}
	if err != nil {
		tc.errs.Respond(c, "list by complex", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainers retrieved successfully", trainers)
}

// @Summary      Get trainer by employee
// @Tags         Trainers
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        employeeId  path  int  true  "Employee ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers/complex/{complexId}/employee/{employeeId} [get]
func (tc *TrainerController) GetTrainerByEmployee(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	employeeID, err := common.ParseUintParam(c, paramEmployeeID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	t, err := tc.service.GetByEmployee(c.Request.Context(), complexID, employeeID)
	if err != nil {
		tc.errs.Respond(c, "get by employee", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer retrieved successfully", t)
}

// @Summary      Get trainer
// @Tags         Trainers
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers/{id} [get]
func (tc *TrainerController) GetTrainer(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	t, err := tc.service.Get(c.Request.Context(), id)
	if err != nil {
		tc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer retrieved successfully", t)
}

// @Summary      Create trainer
// @Tags         Trainers
// @Accept       json
// @Produce      json
// @Param        request  body  CreateTrainerRequest  true  "Create trainer payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers [post]
func (tc *TrainerController) CreateTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	t, err := tc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		tc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Trainer created successfully", t)
}

// @Summary      Update trainer
// @Tags         Trainers
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateTrainerRequest  true  "Update trainer payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers/{id} [put]
func (tc *TrainerController) UpdateTrainer(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateTrainerRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	t, err := tc.service.Update(c.Request.Context(), id, Patch{SportTypeID: req.SportTypeID})
	if err != nil {
		tc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer updated successfully", t)
}

// @Summary      Delete trainer
// @Tags         Trainers
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainers/{id} [delete]
func (tc *TrainerController) DeleteTrainer(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	t, err := tc.service.Delete(c.Request.Context(), id)
	if err != nil {
		tc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer deleted successfully", t)
}
