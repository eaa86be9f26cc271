package sportgroup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type SportGroupController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewSportGroupController(service *Service, errs common.ErrorReporter) *SportGroupController {
	return &SportGroupController{service: service, errs: errs}
}

type CreateSportGroupRequest struct {
	SportTypeID uint   `json:"sportTypeId" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
}

type UpdateSportGroupRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (r CreateSportGroupRequest) toModel() *SportGroup {
	return &SportGroup{Name: r.Name, SportTypeID: r.SportTypeID}
}

// @Summary      Get all sport groups
// @Tags         SportGroups
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-groups [get]
func (gc *SportGroupController) GetAllSportGroups(c *gin.Context) {
	groups, err := gc.service.List(c.Request.Context())
	if err != nil {
		gc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport groups retrieved successfully", groups)
}

// @Summary      Get sport group
// @Tags         SportGroups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-groups/{id} [get]
func (gc *SportGroupController) GetSportGroup(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	g, err := gc.service.Get(c.Request.Context(), id)
	if err != nil {
		gc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport group retrieved successfully", g)
}

// @Summary      Create sport group
// @Tags         SportGroups
// @Accept       json
// @Produce      json
// @Param        request  body  CreateSportGroupRequest  true  "Create sport group payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-groups [post]
func (gc *SportGroupController) CreateSportGroup(c *gin.Context) {
	var req CreateSportGroupRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	g, err := gc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		gc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport group created successfully", g)
}

// @Summary      Update sport group
// @Tags         SportGroups
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateSportGroupRequest  true  "Update sport group payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-groups/{id} [put]
func (gc *SportGroupController) UpdateSportGroup(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateSportGroupRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	g, err := gc.service.Update(c.Request.Context(), id, Patch{Name: req.Name})
	if err != nil {
		gc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport group updated successfully", g)
}

// @Summary      Delete sport group
// @Tags         SportGroups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-groups/{id} [delete]
func (gc *SportGroupController) DeleteSportGroup(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	g, err := gc.service.Delete(c.Request.Context(), id)
	if err != nil {
		gc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport group deleted successfully", g)
}
