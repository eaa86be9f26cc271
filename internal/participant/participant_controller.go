package participant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type ParticipantController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewParticipantController(service *Service, errs common.ErrorReporter) *ParticipantController {
	return &ParticipantController{service: service, errs: errs}
}

type CreateParticipantRequest struct {
	SportEventID uint `json:"sportEventId" binding:"required"`
	TraineeID    uint `json:"traineeId" binding:"required"`
}

// @Summary      Get all participants
// @Tags         EventParticipants
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants [get]
func (pc *ParticipantController) GetAllParticipants(c *gin.Context) {
	participants, err := pc.service.List(c.Request.Context())
	if err != nil {
		pc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participants retrieved successfully", participants)
}

// @Summary      Get event participants
// @Tags         EventParticipants
// @Produce      json
// @Param        eventId  path  int  true  "Sport event ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants/event/{eventId} [get]
func (pc *ParticipantController) GetEventParticipants(c *gin.Context) {
	eventID, err := common.ParseUintParam(c, "eventId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	participants, err := pc.service.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		pc.errs.Respond(c, "list by event", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participants retrieved successfully", participants)
}

// @Summary      Get trainee participations
// @Tags         EventParticipants
// @Produce      json
// @Param        traineeId  path  int  true  "Trainee ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants/trainee/{traineeId} [get]
func (pc *ParticipantController) GetTraineeParticipations(c *gin.Context) {
	traineeID, err := common.ParseUintParam(c, "traineeId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	participants, err := pc.service.ListByTrainee(c.Request.Context(), traineeID)
	if err != nil {
		pc.errs.Respond(c, "list by trainee", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Participants retrieved successfully", participants)
}

// @Summary      Get participant
// @Tags         EventParticipants
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants/{id} [get]
func (pc *ParticipantController) GetParticipant(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Participant retrieved successfully", p)
}

// @Summary      Create participant
// @Tags         EventParticipants
// @Accept       json
// @Produce      json
// @Param        request  body  CreateParticipantRequest  true  "Create participant payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants [post]
func (pc *ParticipantController) CreateParticipant(c *gin.Context) {
	var req CreateParticipantRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	p, err := pc.service.Add(c.Request.Context(), &Participant{SportEventID: req.SportEventID, TraineeID: req.TraineeID})
	if err != nil {
		pc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Trainee registered to event successfully", p)
}

// @Summary      Delete participant
// @Tags         EventParticipants
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-participants/{id} [delete]
func (pc *ParticipantController) DeleteParticipant(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Participant deleted successfully", p)
}
