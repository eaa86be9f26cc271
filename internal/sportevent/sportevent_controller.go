package sportevent

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type SportEventController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewSportEventController(service *Service, errs common.ErrorReporter) *SportEventController {
	return &SportEventController{service: service, errs: errs}
}

type CreateSportEventRequest struct {
	ComplexID   uint      `json:"complexId" binding:"required"`
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=4000"`
	Date        time.Time `json:"date" binding:"required"`
}

type UpdateSportEventRequest struct {
	Name        string    `json:"name" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=4000"`
	Date        time.Time `json:"date" binding:"required"`
}

func (r CreateSportEventRequest) toModel() *SportEvent {
	return &SportEvent{ComplexID: r.ComplexID, Name: r.Name, Description: r.Description, Date: r.Date}
}

// @Summary      Get all sport events
// @Tags         SportEvents
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events [get]
func (sc *SportEventController) GetAllSportEvents(c *gin.Context) {
	events, err := sc.service.List(c.Request.Context())
	if err != nil {
		sc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport events retrieved successfully", events)
}

// @Summary      Get complex sport events
// @Tags         SportEvents
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events/complex/{complexId} [get]
func (sc *SportEventController) GetComplexSportEvents(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	events, err := sc.service.ListByComplex(c.Request.Context(), complexID)
	if err != nil {
		sc.errs.Respond(c, "list by complex", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport events retrieved successfully", events)
}

// @Summary      Get sport event
// @Tags         SportEvents
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events/{id} [get]
func (sc *SportEventController) GetSportEvent(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	e, err := sc.service.Get(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport event retrieved successfully", e)
}

// CreateSportEvent responds as soon as the event is stored; subscribers are notified in the background.
//
// @Summary      Create sport event
// @Tags         SportEvents
// @Accept       json
// @Produce      json
// @Param        request  body  CreateSportEventRequest  true  "Create sport event payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events [post]
func (sc *SportEventController) CreateSportEvent(c *gin.Context) {
	var req CreateSportEventRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	e, err := sc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		sc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Sport event created successfully", e)
}

// @Summary      Update sport event
// @Tags         SportEvents
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateSportEventRequest  true  "Update sport event payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events/{id} [put]
func (sc *SportEventController) UpdateSportEvent(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateSportEventRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	e, err := sc.service.Update(c.Request.Context(), id, Patch{Name: req.Name, Description: req.Description, Date: req.Date})
	if err != nil {
		sc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport event updated successfully", e)
}

// @Summary      Delete sport event
// @Tags         SportEvents
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /sport-events/{id} [delete]
func (sc *SportEventController) DeleteSportEvent(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	e, err := sc.service.Delete(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Sport event deleted successfully", e)
}
