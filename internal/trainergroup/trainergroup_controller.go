package trainergroup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type TrainerGroupController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewTrainerGroupController(service *Service, errs common.ErrorReporter) *TrainerGroupController {
	return &TrainerGroupController{service: service, errs: errs}
}

type CreateTrainerGroupRequest struct {
	TrainerID uint `json:"trainerId" binding:"required"`
	GroupID   uint `json:"groupId" binding:"required"`
}

// @Summary      Get all trainer groups
// @Tags         TrainerGroups
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups [get]
func (tc *TrainerGroupController) GetAllTrainerGroups(c *gin.Context) {
	enrollments, err := tc.service.List(c.Request.Context())
	if err != nil {
		tc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer groups retrieved successfully", enrollments)
}

// @Summary      Get by trainer
// @Tags         TrainerGroups
// @Produce      json
// @Param        trainerId  path  int  true  "Trainer ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups/trainer/{trainerId} [get]
func (tc *TrainerGroupController) GetByTrainer(c *gin.Context) {
	trainerID, err := common.ParseUintParam(c, "trainerId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	enrollments, err := tc.service.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		tc.errs.Respond(c, "list by trainer", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer groups retrieved successfully", enrollments)
}

// @Summary      Get by group
// @Tags         TrainerGroups
// @Produce      json
// @Param        groupId  path  int  true  "Sport group ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups/group/{groupId} [get]
func (tc *TrainerGroupController) GetByGroup(c *gin.Context) {
	groupID, err := common.ParseUintParam(c, "groupId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	enrollments, err := tc.service.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		tc.errs.Respond(c, "list by group", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer groups retrieved successfully", enrollments)
}

// @Summary      Get trainer group
// @Tags         TrainerGroups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups/{id} [get]
func (tc *TrainerGroupController) GetTrainerGroup(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	tg, err := tc.service.Get(c.Request.Context(), id)
	if err != nil {
		tc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer group retrieved successfully", tg)
}

// @Summary      Create trainer group
// @Tags         TrainerGroups
// @Accept       json
// @Produce      json
// @Param        request  body  CreateTrainerGroupRequest  true  "Create trainer group payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups [post]
func (tc *TrainerGroupController) CreateTrainerGroup(c *gin.Context) {
	var req CreateTrainerGroupRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	tg, err := tc.service.Add(c.Request.Context(), &TrainerGroup{TrainerID: req.TrainerID, GroupID: req.GroupID})
	if err != nil {
		tc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Trainer enrolled successfully", tg)
}

// @Summary      Delete trainer group
// @Tags         TrainerGroups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainer-groups/{id} [delete]
func (tc *TrainerGroupController) DeleteTrainerGroup(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	tg, err := tc.service.Delete(c.Request.Context(), id)
	if err != nil {
		tc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainer group deleted successfully", tg)
}
