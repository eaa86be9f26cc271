package pocket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type PocketController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewPocketController(service *Service, errs common.ErrorReporter) *PocketController {
	return &PocketController{service: service, errs: errs}
}

type CreatePocketRequest struct {
	Pocket        string   `json:"pocket" binding:"required,max=100"`
	PricePerMonth *float64 `json:"pricePerMonth" binding:"required,gte=0"`
}

type UpdatePocketRequest struct {
	PricePerMonth *float64 `json:"pricePerMonth" binding:"required,gte=0"`
}

// @Summary      Get all pockets
// @Tags         Pockets
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /pockets [get]
func (pc *PocketController) GetAllPockets(c *gin.Context) {
	pockets, err := pc.service.List(c.Request.Context())
	if err != nil {
		pc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Pockets retrieved successfully", pockets)
}

// @Summary      Get pocket
// @Tags         Pockets
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /pockets/{id} [get]
func (pc *PocketController) GetPocket(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Pocket retrieved successfully", p)
}

// @Summary      Create pocket
// @Tags         Pockets
// @Accept       json
// @Produce      json
// @Param        request  body  CreatePocketRequest  true  "Create pocket payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /pockets [post]
func (pc *PocketController) CreatePocket(c *gin.Context) {
	var req CreatePocketRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	p, err := pc.service.Add(c.Request.Context(), &Pocket{Name: req.Pocket, PricePerMonth: *req.PricePerMonth})
	if err != nil {
		pc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Pocket created successfully", p)
}

// @Summary      Update pocket
// @Tags         Pockets
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdatePocketRequest  true  "Update pocket payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /pockets/{id} [put]
func (pc *PocketController) UpdatePocket(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdatePocketRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	p, err := pc.service.Update(c.Request.Context(), id, Patch{PricePerMonth: *req.PricePerMonth})
	if err != nil {
		pc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Pocket updated successfully", p)
}

// @Summary      Delete pocket
// @Tags         Pockets
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /pockets/{id} [delete]
func (pc *PocketController) DeletePocket(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Pocket deleted successfully", p)
}
