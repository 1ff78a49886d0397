package routes_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"nucleav-frontend/internal/api/middleware"
	"nucleav-frontend/internal/api/routes"
	"nucleav-frontend/internal/config"
	"nucleav-frontend/internal/mocks"
	"nucleav-frontend/internal/notify"
	"nucleav-frontend/internal/service"
	"nucleav-frontend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newRouter(t *testing.T, cfg *config.Config, pinger fakePinger) *testutils.HTTPTestSuite {
	t.Helper()
	ctrl := gomock.NewController(t)
	registry := service.NewViewRegistry(service.PlatformAPIs{
		ProjectMaterials: mocks.NewMockProjectMaterialAPI(ctrl),
		ProjectUsers:     mocks.NewMockProjectUserAPI(ctrl),
		Materials:        mocks.NewMockMaterialAPI(ctrl),
		Users:            mocks.NewMockUserAPI(ctrl),
	}, service.Dependencies{})
	t.Cleanup(registry.CloseAll)

	suite := testutils.SetupHTTPTest()
	suite.Router = routes.SetupRoutes(cfg, routes.Dependencies{
		Registry:      registry,
		Notifications: notify.NewBuffer(10),
		Platform:      pinger,
	})
	return suite
}

func TestHealthEndpoints(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}

	healthy := newRouter(t, cfg, fakePinger{})
	w := healthy.MakeRequest(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = healthy.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	down := newRouter(t, cfg, fakePinger{err: errors.New("connection refused")})
	w = down.MakeRequest(http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := newRouter(t, &config.Config{}, fakePinger{})
	w := r.MakeRequestWithHeaders(http.MethodGet, "/health/live", nil, map[string]string{middleware.RequestIDHeader: "req-42"})
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := newRouter(t, &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}, fakePinger{})

	w := r.MakeRequestWithHeaders(http.MethodOptions, "/api/v1/notifications", nil, map[string]string{
		"Origin":                        "http://localhost:5173",
		"Access-Control-Request-Method": "GET",
	})
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthRequirement(t *testing.T) {
	strict := newRouter(t, &config.Config{}, fakePinger{})
	w := strict.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)
	testutils.AssertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized", "")

	strict.Token = "token-123"
	w = strict.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	// With a service token configured the browser token becomes optional.
	relaxed := newRouter(t, &config.Config{ServiceAccessToken: "svc"}, fakePinger{})
	w = relaxed.MakeRequest(http.MethodGet, "/api/v1/notifications", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
