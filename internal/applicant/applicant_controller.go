package applicant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type ApplicantController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewApplicantController(service *Service, errs common.ErrorReporter) *ApplicantController {
	return &ApplicantController{service: service, errs: errs}
}

type CreateApplicantRequest struct {
	VacancyID uint   `json:"vacancyId" binding:"required"`
	PersonID  string `json:"personId" binding:"required,max=50"`
}

// @Summary      Get all applicants
// @Tags         Applicants
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants [get]
func (ac *ApplicantController) GetAllApplicants(c *gin.Context) {
	applicants, err := ac.service.List(c.Request.Context())
	if err != nil {
		ac.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Applicants retrieved successfully", applicants)
}

// @Summary      Get vacancy applicants
// @Tags         Applicants
// @Produce      json
// @Param        vacancyId  path  int  true  "Vacancy ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants/vacancy/{vacancyId} [get]
func (ac *ApplicantController) GetVacancyApplicants(c *gin.Context) {
	vacancyID, err := common.ParseUintParam(c, "vacancyId")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	applicants, err := ac.service.ListByVacancy(c.Request.Context(), vacancyID)
	if err != nil {
		ac.errs.Respond(c, "list by vacancy", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Applicants retrieved successfully", applicants)
}

// @Summary      Get applicant by person
// @Tags         Applicants
// @Produce      json
// @Param        personId  path  string  true  "External person ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants/person/{personId} [get]
func (ac *ApplicantController) GetApplicantByPerson(c *gin.Context) {
	a, err := ac.service.GetByPerson(c.Request.Context(), c.Param("personId"))
	if err != nil {
		ac.errs.Respond(c, "get by person", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Applicant retrieved successfully", a)
}

// @Summary      Get applicant
// @Tags         Applicants
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants/{id} [get]
func (ac *ApplicantController) GetApplicant(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	a, err := ac.service.Get(c.Request.Context(), id)
	if err != nil {
		ac.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Applicant retrieved successfully", a)
}

// @Summary      Create applicant
// @Tags         Applicants
// @Accept       json
// @Produce      json
// @Param        request  body  CreateApplicantRequest  true  "Create applicant payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      409  {object}  responses.ErrorResponse  "Already exists"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants [post]
func (ac *ApplicantController) CreateApplicant(c *gin.Context) {
	var req CreateApplicantRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	a, err := ac.service.Add(c.Request.Context(), &Applicant{VacancyID: req.VacancyID, PersonID: req.PersonID})
	if err != nil {
		ac.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Application submitted successfully", a)
}

// @Summary      Delete applicant
// @Tags         Applicants
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /applicants/{id} [delete]
func (ac *ApplicantController) DeleteApplicant(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	a, err := ac.service.Delete(c.Request.Context(), id)
	if err != nil {
		ac.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Applicant deleted successfully", a)
}
