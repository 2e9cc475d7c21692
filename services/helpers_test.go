package services

import (
	"bytes"
	"mime/multipart"
	"testing"
	"time"

	appConfig "github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestStore opens a migrated in-memory database. Connecting through
// ConnectDatabase keeps the single-connection limit, so every query in a test
// sees the same in-memory database.
func setupTestStore(t *testing.T) (repository.Store, *gorm.DB) {
	t.Helper()

	db, err := appConfig.ConnectDatabase(&appConfig.Config{DatabaseURL: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, appConfig.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewStore(db), db
}

func seedTable(t *testing.T, db *gorm.DB, number int, status models.TableStatus) *models.Table {
	t.Helper()

	table := &models.Table{Number: number, Capacity: 4, Status: status}
	require.NoError(t, db.Create(table).Error)
	return table
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: slug, Emoji: "☕"}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, category string) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{Name: name, Price: price, Category: category, Available: true}
	require.NoError(t, db.Create(item).Error)
	return item
}

// seedOrder inserts an order directly, bypassing validation and table side effects
func seedOrder(t *testing.T, db *gorm.DB, tableID *uint, status models.OrderStatus, createdAt time.Time, items ...models.OrderItem) *models.Order {
	t.Helper()

	orderType := models.OrderTypeDineIn
	if tableID == nil {
		orderType = models.OrderTypeDelivery
	}
	order := &models.Order{TableID: tableID, Status: status, OrderType: orderType}
	order.SetItems(items)
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).UpdateColumn("created_at", createdAt).Error)
	return order
}

func tableStatus(t *testing.T, db *gorm.DB, id uint) models.TableStatus {
	t.Helper()

	var table models.Table
	require.NoError(t, db.First(&table, id).Error)
	return table.Status
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool { return &v }

func tea(quantity int) models.OrderItem {
	return models.OrderItem{Name: "Tea", Price: 60, Quantity: quantity, Category: "drinks"}
}

func requireKind(t *testing.T, err error, kind error, code string) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var serviceErr *Error
	require.ErrorAs(t, err, &serviceErr)
	require.Equal(t, code, serviceErr.Code)
}

// newFileHeader builds the header the HTTP layer would hand over for an uploaded file
func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}
