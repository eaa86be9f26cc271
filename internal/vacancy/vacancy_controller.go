package vacancy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

const (
	queryPositionID = "positionId"
	queryIsActive   = "isActive"
)

type VacancyController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewVacancyController(service *Service, errs common.ErrorReporter) *VacancyController {
	return &VacancyController{service: service, errs: errs}
}

type CreateVacancyRequest struct {
	ComplexID  uint   `json:"complexId" binding:"required"`
	PositionID uint   `json:"positionId" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Details    string `json:"details" binding:"max=4000"`
	IsActive   *bool  `json:"isActive"`
}

type UpdateVacancyRequest struct {
	PositionID uint   `json:"positionId" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Details    string `json:"details" binding:"max=4000"`
	IsActive   *bool  `json:"isActive" binding:"required"`
}

func (r CreateVacancyRequest) toModel() *Vacancy {
	return &Vacancy{
		ComplexID:  r.ComplexID,
		PositionID: r.PositionID,
		Title:      r.Title,
		Details:    r.Details,
		IsActive:   r.IsActive,
	}
}

func (r UpdateVacancyRequest) toPatch() Patch {
	return Patch{PositionID: r.PositionID, Title: r.Title, Details: r.Details, IsActive: *r.IsActive}
}

// @Summary      Get all vacancies
// @Tags         Vacancies
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies [get]
func (vc *VacancyController) GetAllVacancies(c *gin.Context) {
	vacancies, err := vc.service.List(c.Request.Context())
	if err != nil {
		vc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Vacancies retrieved successfully", vacancies)
}

// GetComplexVacancies lists a complex's vacancies, narrowed by ?positionId= or ?isActive=.
//
// @Summary      Get complex vacancies
// @Tags         Vacancies
// @Produce      json
// @Param        complexId  path  int  true  "Sport complex ID"
// @Param        positionId  query  int  false  "Narrow to one position"
// @Param        isActive  query  bool  false  "Narrow by status"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies/complex/{complexId} [get]
func (vc *VacancyController) GetComplexVacancies(c *gin.Context) {
	complexID, err := common.ParseUintParam(c, common.ParamComplexID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var vacancies []Vacancy
	switch {
	case c.Query(queryPositionID) != "":
		positionID, perr := common.ParseUintQuery(c, queryPositionID)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		vacancies, err = vc.service.ListByPosition(ctx, complexID, positionID)
	case c.Query(queryIsActive) != "":
		active, perr := common.ParseBoolQuery(c, queryIsActive)
		if perr != nil {
			responses.BadRequest(c, perr.Error())
			return
		}
		vacancies, err = vc.service.ListByStatus(ctx, complexID, active)
	default:
		vacancies, err = vc.service.ListByComplex(ctx, complexID)
	}
	if err != nil {
		vc.errs.Respond(c, "list by complex", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Vacancies retrieved successfully", vacancies)
}

// @Summary      Get vacancy
// @Tags         Vacancies
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies/{id} [get]
func (vc *VacancyController) GetVacancy(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	v, err := vc.service.Get(c.Request.Context(), id)
	if err != nil {
		vc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Vacancy retrieved successfully", v)
}

// @Summary      Create vacancy
// @Tags         Vacancies
// @Accept       json
// @Produce      json
// @Param        request  body  CreateVacancyRequest  true  "Create vacancy payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies [post]
func (vc *VacancyController) CreateVacancy(c *gin.Context) {
	var req CreateVacancyRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	v, err := vc.service.Add(c.Request.Context(), req.toModel())
	if err != nil {
		vc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Vacancy created successfully", v)
}

// @Summary      Update vacancy
// @Tags         Vacancies
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  UpdateVacancyRequest  true  "Update vacancy payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies/{id} [put]
func (vc *VacancyController) UpdateVacancy(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req UpdateVacancyRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	v, err := vc.service.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		vc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Vacancy updated successfully", v)
}

// @Summary      Delete vacancy
// @Tags         Vacancies
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /vacancies/{id} [delete]
func (vc *VacancyController) DeleteVacancy(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	v, err := vc.service.Delete(c.Request.Context(), id)
	if err != nil {
		vc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Vacancy deleted successfully", v)
}
