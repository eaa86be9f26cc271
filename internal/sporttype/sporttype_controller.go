package sporttype

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type SportTypeController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewSportTypeController(service *Service, errs common.ErrorReporter) *SportTypeController {
	return &SportTypeController{service: service, errs: errs}
}

type SportTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (r SportTypeRequest) toModel() *SportType {
	return &SportType{Name: r.Name}
}

// GetAllSportTypes handles GET /sport-types
//
// @Summary      Get all sport types
// @Tags         SportTypes
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-types [get]
func (sc *SportTypeController) GetAllSportTypes(c *gin.Context) {
	types, err := sc.service.List(c.Request.Context())
	if err != nil {
		sc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport types retrieved successfully", types)
}

// GetSportType handles GET /sport-types/:id
//
// @Summary      Get sport type
// @Tags         SportTypes
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-types/{id} [get]
func (sc *SportTypeController) GetSportType(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	st, err := sc.service.Get(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport type retrieved successfully", st)
}

// CreateSportType handles POST /sport-types
//
// @Summary      Create sport type
// @Tags         SportTypes
// @Accept       json
// @Produce      json
// @Param        request  body  SportTypeRequest  true  "Sport type payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-types [post]
func (sc *SportTypeController) CreateSportType(c *gin.Context) {
	var req SportTypeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	st, err := sc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		sc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport type created successfully", st)
}

// UpdateSportType handles PUT /sport-types/:id
//
// @Summary      Update sport type
// @Tags         SportTypes
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  SportTypeRequest  true  "Sport type payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-types/{id} [put]
func (sc *SportTypeController) UpdateSportType(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req SportTypeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	st, err := sc.service.Update(c.Request.Context(), id, Patch{Name: req.Name})
	if err != nil {
		sc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport type updated successfully", st)
}

// DeleteSportType handles DELETE /sport-types/:id
//
// @Summary      Delete sport type
// @Tags         SportTypes
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-types/{id} [delete]
func (sc *SportTypeController) DeleteSportType(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	st, err := sc.service.Delete(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport type deleted successfully", st)
}
