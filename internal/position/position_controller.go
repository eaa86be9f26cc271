package position

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type PositionController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewPositionController(service *Service, errs common.ErrorReporter) *PositionController {
	return &PositionController{service: service, errs: errs}
}

type PositionRequest struct {
	Position string `json:"position" binding:"required,max=100"`
}

// @Summary      Get all positions
// @Tags         Positions
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /positions [get]
func (pc *PositionController) GetAllPositions(c *gin.Context) {
	positions, err := pc.service.List(c.Request.Context())
	if err != nil {
		pc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Positions retrieved successfully", positions)
}

// @Summary      Get position
// @Tags         Positions
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /positions/{id} [get]
func (pc *PositionController) GetPosition(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	p, err := pc.service.Get(c.Request.Context(), id)
	if err != nil {
		pc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Position retrieved successfully", p)
}

// @Summary      Create position
// @Tags         Positions
// @Accept       json
// @Produce      json
// @Param        request  body  PositionRequest  true  "Position payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /positions [post]
func (pc *PositionController) CreatePosition(c *gin.Context) {
	var req PositionRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	p, err := pc.service.Add(c.Request.Context(), &Position{Name: req.Position})
	if err != nil {
		pc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Position created successfully", p)
}

// @Summary      Update position
// @Tags         Positions
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  PositionRequest  true  "Position payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /positions/{id} [put]
func (pc *PositionController) UpdatePosition(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req PositionRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	p, err := pc.service.Update(c.Request.Context(), id, Patch{Name: req.Position})
	if err != nil {
		pc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Position updated successfully", p)
}

// @Summary      Delete position
// @Tags         Positions
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /positions/{id} [delete]
func (pc *PositionController) DeletePosition(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	p, err := pc.service.Delete(c.Request.Context(), id)
	if err != nil {
		pc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Position deleted successfully", p)
}
