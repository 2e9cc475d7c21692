package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/routes"
	"github.com/kendall-kelly/cafe-pos-api/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Response is the JSON envelope every endpoint answers with
type Response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
}

// ErrorBody is the error part of Response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RequireTestEnvironment ensures that tests are running in the test environment.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test. Current GO_ENV=%q.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
}

// NewTestConfig returns a configuration for an in-memory database with local
// image storage under t.TempDir()
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DatabaseURL:           ":memory:",
		Port:                  "8080",
		GoEnv:                 "test",
		LogLevel:              "silent",
		OrderTransitionPolicy: "permissive",
		ImageStorage:          "local",
		UploadDir:             t.TempDir(),
		StaticDir:             "",
		CORSAllowedOrigins:    []string{"*"},
	}
}

// NewTestDB opens a migrated in-memory SQLite database that is closed when the test ends
func NewTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := config.ConnectDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewTestRouter wires the full application over db with the given image storage
func NewTestRouter(t *testing.T, cfg *config.Config, db *gorm.DB, images services.ImageService) (*gin.Engine, *routes.Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps, err := routes.NewDependencies(cfg, db, images)
	require.NoError(t, err)
	return routes.SetupRouter(deps), deps
}

// PerformRequest sends body as JSON (when not nil) and records the response
func PerformRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeResponse parses the envelope, and the data into out when out is not nil
func DecodeResponse(t *testing.T, body []byte, out interface{}) Response {
	t.Helper()

	var response Response
	require.NoError(t, json.Unmarshal(body, &response), "response should be valid JSON: %s", body)
	if out != nil && len(response.Data) > 0 {
		require.NoError(t, json.Unmarshal(response.Data, out))
	}
	return response
}

// NewImageUploadRequest builds a multipart request carrying content in the "image" field
func NewImageUploadRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// SeedTable inserts a table directly
func SeedTable(t *testing.T, db *gorm.DB, number int, status models.TableStatus) models.Table {
	t.Helper()

	table := models.Table{Number: number, Capacity: 4, Status: status}
	require.NoError(t, db.Create(&table).Error)
	return table
}

// SeedCategory inserts a category directly
func SeedCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	t.Helper()

	category := models.Category{Name: name, Slug: slug, Emoji: "🍽️"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// SeedMenuItem inserts an available menu item directly
func SeedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, category string) models.MenuItem {
	t.Helper()

	item := models.MenuItem{Name: name, Price: price, Category: category, Available: true}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// PerformRequestWith records the response to a prepared request
func PerformRequestWith(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
