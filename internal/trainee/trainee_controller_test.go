package trainee

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/sportcomplex/internal/common"
	"github.com/DhavalSuthar-24/sportcomplex/internal/pocket"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sportgroup"
	"github.com/DhavalSuthar-24/sportcomplex/internal/sporttype"
	"github.com/DhavalSuthar-24/sportcomplex/internal/store"
	"github.com/DhavalSuthar-24/sportcomplex/internal/testutil"
)

func newRouter(t *testing.T) (*gin.Engine, *Service) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t, &sporttype.SportType{}, &sportgroup.SportGroup{}, &pocket.Pocket{}, &Trainee{})
	svc := NewService(store.NewRepository[Trainee](db))
	router := gin.New()
	RegisterTraineeRoutes(router.Group("/api"), svc, common.ErrorReporter{Entity: Entity})
	return router, svc
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func countData(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var body struct {
		Data []Trainee `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return len(body.Data)
}

func TestComplexTraineeFilterRoutes(t *testing.T) {
	router, svc := newRouter(t)
	ctx := context.Background()
	for _, tr := range []Trainee{
		{ComplexID: 1, PersonID: "a", GroupID: 1, PocketID: 1, IsPaid: true},
		{ComplexID: 1, PersonID: "b", GroupID: 2, PocketID: 1},
		{ComplexID: 1, PersonID: "c", GroupID: 2, PocketID: 2},
	} {
		_, err := svc.Add(ctx, &tr)
		require.NoError(t, err)
	}

	cases := []struct {
		path string
		want int
	}{
		{"/api/trainees/complex/1", 3},
		{"/api/trainees/complex/1?groupId=2", 2},
		{"/api/trainees/complex/1?pocketId=2", 1},
		{"/api/trainees/complex/1?isPaid=true", 1},
		{"/api/trainees/complex/1?isPaid=false", 2},
		{"/api/trainees/complex/2", 0},
	}
	for _, tc := range cases {
		w := get(router, tc.path)
		require.Equal(t, http.StatusOK, w.Code, tc.path)
		assert.Equal(t, tc.want, countData(t, w), tc.path)
	}

	assert.Equal(t, http.StatusBadRequest, get(router, "/api/trainees/complex/1?isPaid=maybe").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/api/trainees/complex/x").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/trainees/complex/1/person/b").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/trainees/complex/1/person/zz").Code)
}

func TestUpdateTraineeRequiresPaymentFlag(t *testing.T) {
	router, svc := newRouter(t)
	tr, err := svc.Add(context.Background(), &Trainee{ComplexID: 1, PersonID: "p", GroupID: 1, PocketID: 1, IsPaid: true})
	require.NoError(t, err)

	put := func(body string) int {
		req := httptest.NewRequest(http.MethodPut, "/api/trainees/1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, put(`{"groupId":2,"pocketId":2}`))
	assert.Equal(t, http.StatusOK, put(`{"groupId":2,"pocketId":2,"isPaid":false}`))

	reloaded, err := svc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPaid)
	assert.Equal(t, uint(2), reloaded.GroupID)
}
