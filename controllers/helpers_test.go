package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	appConfig "github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/repository"
	"github.com/kendall-kelly/cafe-pos-api/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	images *services.MockImageService
}

// setupTestEnv registers every POS route on a fresh in-memory database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := appConfig.ConnectDatabase(&appConfig.Config{DatabaseURL: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, appConfig.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := repository.NewStore(db)
	images := services.NewMockImageService()

	tableCtrl := NewTableController(services.NewTableService(store))
	categoryCtrl := NewCategoryController(services.NewCategoryService(store))
	menuCtrl := NewMenuController(services.NewMenuService(store, images))
	orderCtrl := NewOrderController(services.NewOrderService(store, services.PermissiveTransitions))
	reportCtrl := NewReportController(services.NewReportService(store))
	healthCtrl := NewHealthController(db)

	router := gin.New()
	router.GET("/health", healthCtrl.Health)
	router.GET("/database/status", healthCtrl.DatabaseStatus)

	router.GET("/tables", tableCtrl.List)
	router.GET("/tables/stats", tableCtrl.Stats)
	router.GET("/tables/:id", tableCtrl.Get)
	router.POST("/tables", tableCtrl.Create)
	router.PUT("/tables/:id", tableCtrl.Update)
	router.PATCH("/tables/:id/status", tableCtrl.SetStatus)
	router.POST("/tables/:id/recompute", tableCtrl.Recompute)
	router.DELETE("/tables/:id", tableCtrl.Delete)

	router.GET("/categories", categoryCtrl.List)
	router.GET("/categories/:id", categoryCtrl.Get)
	router.POST("/categories", categoryCtrl.Create)
	router.PUT("/categories/:id", categoryCtrl.Update)
	router.DELETE("/categories/:id", categoryCtrl.Delete)

	router.GET("/menu", menuCtrl.List)
	router.GET("/menu/available", menuCtrl.ListAvailable)
	router.GET("/menu/stats", menuCtrl.Stats)
	router.GET("/menu/category/:slug", menuCtrl.ListByCategory)
	router.GET("/menu/:id", menuCtrl.Get)
	router.POST("/menu", menuCtrl.Create)
	router.PUT("/menu/:id", menuCtrl.Update)
	router.PATCH("/menu/:id/availability", menuCtrl.ToggleAvailability)
	router.POST("/menu/:id/image", menuCtrl.UploadImage)
	router.DELETE("/menu/:id", menuCtrl.Delete)

	router.GET("/orders", orderCtrl.List)
	router.GET("/orders/active", orderCtrl.ListActive)
	router.GET("/orders/stats", orderCtrl.Stats)
	router.GET("/orders/table/:tableId", orderCtrl.ListByTable)
	router.GET("/orders/:id", orderCtrl.Get)
	router.POST("/orders", orderCtrl.Create)
	router.PUT("/orders/:id", orderCtrl.Update)
	router.PATCH("/orders/:id/status", orderCtrl.SetStatus)
	router.DELETE("/orders/:id", orderCtrl.Delete)

	router.GET("/reports/z", reportCtrl.ZReport)

	return &testEnv{db: db, router: router, images: images}
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends a JSON request and decodes the envelope. A string body is sent as is.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var response apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "invalid JSON: %s", w.Body.String())
	return w, response
}

func decodeData(t *testing.T, response apiResponse, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(response.Data, out))
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, w.Code, "body: %s", w.Body.String())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
