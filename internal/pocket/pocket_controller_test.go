package pocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/observability"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type recorded struct {
	events []observability.Event
}

func (r *recorded) Record(_ context.Context, ev observability.Event) {
	r.events = append(r.events, ev)
}

type harness struct {
	router   *gin.Engine
	repo     *testutil.SpyRepository[Pocket]
	metrics  *metrics.Metrics
	recorder *recorded
}

func newHarness(t *testing.T) *harness {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &Pocket{})
	h := &harness{
		router:   gin.New(),
		repo:     testutil.Spy(store.NewRepository[Pocket](db)),
		metrics:  metrics.New(prometheus.NewRegistry()),
		recorder: &recorded{},
	}
	errs := common.ErrorReporter{Entity: Entity, Recorder: h.recorder, Metrics: h.metrics}
	RegisterPocketRoutes(h.router.Group("/api"), NewService(h.repo), errs)
	return h
}

func (h *harness) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestPocketRoutes(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/pockets", `{"pocket":"A","pricePerMonth":10}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Data Pocket `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "A", body.Data.Name)

	w = h.do(http.MethodPost, "/api/pockets", `{"pocket":"A","pricePerMonth":999}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1.0, promtest.ToFloat64(h.metrics.EntityConflicts.WithLabelValues(Entity)))

	w = h.do(http.MethodPut, "/api/pockets/1", `{"pricePerMonth":15}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodPut, "/api/pockets/9", `{"pricePerMonth":15}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(http.MethodGet, "/api/pockets/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodPost, "/api/pockets", `{"pocket":"B"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodDelete, "/api/pockets/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = h.do(http.MethodGet, "/api/pockets/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Empty(t, h.recorder.events)
}

func TestPocketRoutesHideStoreFaults(t *testing.T) {
	h := newHarness(t)
	h.repo.FailWith(errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	w := h.do(http.MethodGet, "/api/pockets", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	require.Len(t, h.recorder.events, 1)
	assert.Equal(t, Entity, h.recorder.events[0].Source)
	assert.Equal(t, "list", h.recorder.events[0].Action)
	assert.Contains(t, h.recorder.events[0].Message, "connection refused")
}
