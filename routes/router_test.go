package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/DhavalSuthar-24/sportcomplex/docs"
	"github.com/DhavalSuthar-24/sportcomplex/internal/metrics"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportevent"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

type notifications struct {
	mu     sync.Mutex
	events []sportevent.SportEvent
}

func (n *notifications) Notify(e sportevent.SportEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func newTestRouter(t *testing.T, ping func() error) (*gin.Engine, *notifications) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, Models()...)
	reg := prometheus.NewRegistry()
	n := &notifications{}
	r := SetupRoutes(NewServices(db, n), Options{
		FrontendURL: "http://localhost:3000",
		Metrics:     metrics.New(reg),
		Gatherer:    reg,
		Ping:        ping,
	})
	return r, n
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEveryEntityListIsRouted(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	for _, path := range []string{
		"/api/sport-types", "/api/positions", "/api/pockets", "/api/employees",
		"/api/trainers", "/api/sport-groups", "/api/trainer-groups", "/api/trainees",
		"/api/vacancies", "/api/applicants", "/api/sport-events", "/api/event-participants",
		"/api/event-winners", "/api/event-subscribers",
		"/api/employees/complex/1", "/api/trainers/complex/1?sportTypeId=2",
		"/api/trainees/complex/1?isPaid=false", "/api/vacancies/complex/1?isActive=true",
		"/api/sport-events/complex/1", "/api/applicants/vacancy/1",
		"/api/event-participants/event/1", "/api/event-participants/trainee/1",
		"/api/event-winners/event/1", "/api/trainer-groups/trainer/1", "/api/trainer-groups/group/1",
	} {
		w := send(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSportEventCreationNotifies(t *testing.T) {
	r, n := newTestRouter(t, nil)

	body := `{"complexId":1,"name":"Cup","date":"2024-06-01T18:00:00Z"}`
	require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/sport-events", body).Code)

	clash := `{"complexId":2,"name":"Other","date":"2024-06-01T18:00:00Z"}`
	w := send(r, http.MethodPost, "/api/sport-events", clash)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SportComplex has an event in this period")

	n.mu.Lock()
	defer n.mu.Unlock()
	require.Len(t, n.events, 1)
	assert.Equal(t, "Cup", n.events[0].Name)
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/health", "").Code)

	send(r, http.MethodPost, "/api/positions", `{"position":"Coach"}`)
	send(r, http.MethodPost, "/api/positions", `{"position":"Coach"}`)
	w := send(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sport_entity_conflicts_total{entity="position"} 1`)

	down, _ := newTestRouter(t, func() error { return errors.New("no db") })
	assert.Equal(t, http.StatusServiceUnavailable, send(down, http.MethodGet, "/health", "").Code)
}

func TestSwaggerServesAPIDescription(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/swagger/index.html", "").Code)

	w := send(r, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"basePath": "/api"`)
	assert.Contains(t, body, `"/trainees/complex/{complexId}/person/{personId}"`)
	assert.Contains(t, body, `"/event-winners/event/{eventId}"`)
}
