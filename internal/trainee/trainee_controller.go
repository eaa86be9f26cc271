package trainee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

const (
	paramPersonID = "personId"
	queryGroupID  = "groupId"
	queryPocketID = "pocketId"
	queryIsPaid   = "isPaid"
)

type TraineeController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewTraineeController(service *Service, errs common.ErrorReporter) *TraineeController {
	return &TraineeController{service: service, errs: errs}
}

type CreateTraineeRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	ComplexID uint   `json:"complexId" binding:"required"`
	PersonID  string `json:"personId" binding:"required,max=50"`
	GroupID   uint   `json:"groupId" binding:"required"`
	PocketID  uint   `json:"pocketId" binding:"required"`
	IsPaid    bool   `json:"isPaid"`
}

type UpdateTraineeRequest struct {
	GroupID  uint  `json:"groupId" binding:"required"`
	PocketID uint  `json:"pocketId" binding:"required"`
	IsPaid   *bool `json:"isPaid" binding:"required"`
}

func (r CreateTraineeRequest) toModel() *Trainee {
	return &Trainee{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		ComplexID: r.ComplexID,
		PersonID:  r.PersonID,
		GroupID:   r.GroupID,
		PocketID:  r.PocketID,
		IsPaid:    r.IsPaid,
	}
}

func (r UpdateTraineeRequest) toPatch() Patch {
	return Patch{GroupID: r.GroupID, PocketID: r.PocketID, IsPaid: *r.IsPaid}
}

// @Summary      Get all trainees
// @Tags         Trainees
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees [get]
func (tc *TraineeController) GetAllTrainees(c *gin.Context) {
	trainees, err := tc.service.List(c.Request.Context())
	if err != nil {
		tc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainees retrieved successfully", trainees)
}

// GetComplexTrainees lists a complex's trainees. At most one of ?groupId=, ?pocketId=
// or ?isPaid= narrows the listing, checked in that order.
//
// @Summary      Get complex trainees
// @Tags         Trainees
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        groupId  query  int  false  "Narrow to one group"
// @Param        pocketId  query  int  false  "Narrow to one pocket"
// @Param        isPaid  query  bool  false  "Narrow by payment status"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees/complex/{complexId} [get]
func (tc *TraineeController) GetComplexTrainees(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var trainees []Trainee
	switch {
	case c.Query(queryGroupID) != "":
		groupID, perr := common.ParseUintQuery(c, queryGroupID)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		trainees, err = tc.service.ListByGroup(ctx, complexID, groupID)
	case c.Query(queryPocketID) != "":
		pocketID, perr := common.ParseUintQuery(c, queryPocketID)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		trainees, err = tc.service.ListByPocket(ctx, complexID, pocketID)
	case c.Query(queryIsPaid) != "":
		isPaid, perr := common.ParseBoolQuery(c, queryIsPaid)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		trainees, err = tc.service.ListByPaymentStatus(ctx, complexID, isPaid)
	default:
		trainees, err = tc.service.ListByComplex(ctx, complexID)
	}
	if err != nil {
		tc.errs.Respond(c, "list by complex", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainees retrieved successfully", trainees)
}

// @Summary      Get trainee by person
// @Tags         Trainees
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        personId  path  string  true  "External person ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees/complex/{complexId}/person/{personId} [get]
func (tc *TraineeController) GetTraineeByPerson(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	t, err := tc.service.GetByPerson(c.Request.Context(), complexID, c.Param(paramPersonID))
	if err != nil {
		tc.errs.Respond(c, "get by person", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainee retrieved successfully", t)
}

// @Summary      Get trainee
// @Tags         Trainees
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees/{id} [get]
func (tc *TraineeController) GetTrainee(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Trainee retrieved successfully", t)
}

// @Summary      Create trainee
// @Tags         Trainees
// @Accept       json
// @Produce      json
// @Param        request  body  CreateTraineeRequest  true  "Create trainee payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees [post]
func (tc *TraineeController) CreateTrainee(c *gin.Context) {
	var req CreateTraineeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	t, err := tc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		tc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Trainee created successfully", t)
}

// @Summary      Update trainee
// @Tags         Trainees
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateTraineeRequest  true  "Update trainee payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees/{id} [put]
func (tc *TraineeController) UpdateTrainee(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateTraineeRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	t, err := tc.service.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		tc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Trainee updated successfully", t)
}

// @Summary      Delete trainee
// @Tags         Trainees
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /trainees/{id} [delete]
func (tc *TraineeController) DeleteTrainee(c *gin.Context) {
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
	responses.SendSuccess(c, http.StatusOK, "Trainee deleted successfully", t)
}
