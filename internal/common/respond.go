package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/middleware"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/pkg/responses"
)

// ErrorReporter turns service errors into responses for one entity kind and reports
// unclassified failures to the observability sink.
type ErrorReporter struct {
	Entity   string
	Recorder observability.Recorder
	Metrics  *metrics.Metrics
}

// Respond writes the response class for err. Unclassified faults never leak their detail.
func (r ErrorReporter) Respond(c *gin.Context, action string, err error) {
	switch status := StatusFor(err); status {
	case http.StatusConflict:
		r.Metrics.RecordConflict(r.Entity)
		responses.SendError(c, status, err.Error())
	case http.StatusNotFound:
		r.Metrics.RecordNotFound(r.Entity)
		responses.SendError(c, status, err.Error())
	default:
		r.Metrics.RecordFailure(r.Entity)
		if r.Recorder != nil {
			r.Recorder.Record(c.Request.Context(), observability.Event{
				Source:    r.Entity,
				Action:    action,
				Message:   err.Error(),
				RequestID: middleware.GetRequestID(c),
			})
		}
		responses.InternalServerError(c, "")
	}
}
