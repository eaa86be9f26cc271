package winner

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type WinnerController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewWinnerController(service *Service, errs common.ErrorReporter) *WinnerController {
	return &WinnerController{service: service, errs: errs}
}

type CreateWinnerRequest struct {
	ParticipantID uint `json:"participantId" binding:"required"`
	Place         int  `json:"place" binding:"required,min=1"`
}

// @Summary      Get all winners
// @Tags         EventWinners
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners [get]
func (wc *WinnerController) GetAllWinners(c *gin.Context) {
	winners, err := wc.service.List(c.Request.Context())
	if err != nil {
		wc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Winners retrieved successfully", winners)
}

// @Summary      Get event winners
// @Tags         EventWinners
// @Produce      json
// @Param        eventId  path  int  true  "Sport event ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners/event/{eventId} [get]
func (wc *WinnerController) GetEventWinners(c *gin.Context) {
	eventID, err := common.ParseUintParam(c, "eventId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	winners, err := wc.service.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		wc.errs.Respond(c, "list by event", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Winners retrieved successfully", winners)
}

// @Summary      Get winner by participant
// @Tags         EventWinners
// @Produce      json
// @Param        participantId  path  int  true  "Event participant ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners/participant/{participantId} [get]
func (wc *WinnerController) GetWinnerByParticipant(c *gin.Context) {
	participantID, err := common.ParseUintParam(c, "participantId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	w, err := wc.service.GetByParticipant(c.Request.Context(), participantID)
	if err != nil {
		wc.errs.Respond(c, "get by participant", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Winner retrieved successfully", w)
}

// @Summary      Get winner
// @Tags         EventWinners
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners/{id} [get]
func (wc *WinnerController) GetWinner(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	w, err := wc.service.Get(c.Request.Context(), id)
	if err != nil {
		wc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Winner retrieved successfully", w)
}

// @Summary      Create winner
// @Tags         EventWinners
// @Accept       json
// @Produce      json
// @Param        request  body  CreateWinnerRequest  true  "Create winner payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners [post]
func (wc *WinnerController) CreateWinner(c *gin.Context) {
	var req CreateWinnerRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	w, err := wc.service.Add(c.Request.Context(), &Winner{ParticipantID: req.ParticipantID, Place: req.Place})
	if err != nil {
		wc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Winner recorded successfully", w)
}

// @Summary      Delete winner
// @Tags         EventWinners
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-winners/{id} [delete]
func (wc *WinnerController) DeleteWinner(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	w, err := wc.service.Delete(c.Request.Context(), id)
	if err != nil {
		wc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Winner deleted successfully", w)
}
