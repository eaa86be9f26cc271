package subscriber

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/validator"
)

type SubscriberController struct {
	service *Service
	errs    common.ErrorReporter
}

func NewSubscriberController(service *Service, errs common.ErrorReporter) *SubscriberController {
	return &SubscriberController{service: service, errs: errs}
}

type SubscriberRequest struct {
	URL string `json:"url" binding:"required,url,max=2048"`
}

// @Summary      Get all subscribers
// @Tags         EventSubscribers
// @Produce      json
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-subscribers [get]
func (sc *SubscriberController) GetAllSubscribers(c *gin.Context) {
	subs, err := sc.service.List(c.Request.Context())
	if err != nil {
		sc.errs.Respond(c, "list", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Subscribers retrieved successfully", subs)
}

// @Summary      Get subscriber
// @Tags         EventSubscribers
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-subscribers/{id} [get]
func (sc *SubscriberController) GetSubscriber(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	sub, err := sc.service.Get(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "get", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Subscriber retrieved successfully", sub)
}

// @Summary      Create subscriber
// @Tags         EventSubscribers
// @Accept       json
// @Produce      json
// @Param        request  body  SubscriberRequest  true  "Subscriber payload"
// @Success      201  {object}  responses.SuccessResponse  "Created"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-subscribers [post]
func (sc *SubscriberController) CreateSubscriber(c *gin.Context) {
	var req SubscriberRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	sub, err := sc.service.Add(c.Request.Context(), &Subscriber{URL: req.URL})
	if err != nil {
		sc.errs.Respond(c, "add", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Subscriber registered successfully", sub)
}

// @Summary      Update subscriber
// @Tags         EventSubscribers
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Param        request  body  SubscriberRequest  true  "Subscriber payload"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-subscribers/{id} [put]
func (sc *SubscriberController) UpdateSubscriber(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	var req SubscriberRequest
	if !validator.BindJSON(c, &req) {
		return
	}
	sub, err := sc.service.Update(c.Request.Context(), id, req.URL)
	if err != nil {
		sc.errs.Respond(c, "update", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Subscriber updated successfully", sub)
}

// @Summary      Delete subscriber
// @Tags         EventSubscribers
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  responses.SuccessResponse  "OK"
// @Failure      400  {object}  responses.ErrorResponse  "Invalid input"
// @Failure      404  {object}  responses.ErrorResponse  "Not found"
// @Failure      500  {object}  responses.ErrorResponse  "Internal server error"
// @Router       /event-subscribers/{id} [delete]
func (sc *SubscriberController) DeleteSubscriber(c *gin.Context) {
	id, err := common.ParseUintParam(c, common.ParamID)
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}
	sub, err := sc.service.Delete(c.Request.Context(), id)
	if err != nil {
		sc.errs.Respond(c, "delete", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Subscriber deleted successfully", sub)
}
