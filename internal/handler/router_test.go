//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"netcafe-booking/internal/handler"
	"netcafe-booking/internal/handler/api"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/pkg/config"
	"netcafe-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouteTable(t *testing.T) map[string][]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	cfg := config.NewTestConfig()
	cfg.CORS.AllowOrigins = []string{"*"}

	h := handler.Handlers{
		Reservation: api.NewReservationHandler(nil, nil),
		Inventory:   api.NewInventoryHandler(nil, nil),
		Rating:      api.NewRatingHandler(nil, nil),
		Report:      api.NewReportHandler(nil, nil),
		Admin:       api.NewAdminHandler(nil, nil),
	}
	auth := middleware.NewAuthMiddleware(jwt.NewService("route-test-secret", time.Hour))
	handler.NewRouter(engine, cfg, h, auth)

	table := make(map[string][]string)
	for _, r := range engine.Routes() {
		table[r.Path] = append(table[r.Path], r.Method)
	}
	return table
}

func TestRouteTable(t *testing.T) {
	table := newRouteTable(t)

	t.Run("room detail is exposed", func(t *testing.T) {
		assert.Contains(t, table["/api/rooms/:id"], http.MethodGet)
	})

	t.Run("reports are created under the pc they concern", func(t *testing.T) {
		assert.Contains(t, table["/api/pcs/:id/reports"], http.MethodPost)
		assert.NotContains(t, table, "/api/reports")
	})

	t.Run("report transitions are idempotent puts", func(t *testing.T) {
		assert.Contains(t, table["/api/admin/reports/:id/resolve"], http.MethodPut)
		assert.Contains(t, table["/api/admin/reports/:id/close"], http.MethodPut)
		assert.NotContains(t, table["/api/admin/reports/:id/resolve"], http.MethodPost)
	})
}
