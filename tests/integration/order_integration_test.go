package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/cafe-pos-api/config"
	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/services"
	"github.com/kendall-kelly/cafe-pos-api/tests/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderIntegrationTestSuite drives orders and tables through the full router
type OrderIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

// SetupTest runs before each test
func (suite *OrderIntegrationTestSuite) SetupTest() {
	testutil.MustSetTestEnvironment(suite.T())

	suite.cfg = testutil.NewTestConfig(suite.T())
	suite.db = testutil.NewTestDB(suite.T(), suite.cfg)
	suite.router, _ = testutil.NewTestRouter(suite.T(), suite.cfg, suite.db, services.NewMockImageService())
}

func (suite *OrderIntegrationTestSuite) request(method, path string, body interface{}, expectedStatus int, out interface{}) testutil.Response {
	w := testutil.PerformRequest(suite.router, method, path, body)
	suite.Require().Equal(expectedStatus, w.Code, "%s %s: %s", method, path, w.Body.String())
	return testutil.DecodeResponse(suite.T(), w.Body.Bytes(), out)
}

func (suite *OrderIntegrationTestSuite) createTable(number int) models.Table {
	var table models.Table
	suite.request(http.MethodPost, "/api/v1/tables", map[string]int{"table_number": number}, http.StatusCreated, &table)
	return table
}

func (suite *OrderIntegrationTestSuite) createOrder(body map[string]interface{}) models.Order {
	var order models.Order
	suite.request(http.MethodPost, "/api/v1/orders", body, http.StatusCreated, &order)
	return order
}

func (suite *OrderIntegrationTestSuite) tableStatus(id uint) models.TableStatus {
	var table models.Table
	suite.request(http.MethodGet, fmt.Sprintf("/api/v1/tables/%d", id), nil, http.StatusOK, &table)
	return table.Status
}

func teaItems(quantity int) []map[string]interface{} {
	return []map[string]interface{}{{"name": "Tea", "price": 60, "quantity": quantity, "category": "drinks"}}
}

// TestTableFollowsItsOrders covers occupancy from the first order to the last payment
func (suite *OrderIntegrationTestSuite) TestTableFollowsItsOrders() {
	table := suite.createTable(1)
	suite.Equal(models.TableStatusAvailable, table.Status)

	first := suite.createOrder(map[string]interface{}{"table_id": table.ID, "items": teaItems(1)})
	second := suite.createOrder(map[string]interface{}{"table_id": table.ID, "items": teaItems(2)})
	suite.Equal(models.TableStatusOccupied, suite.tableStatus(table.ID))

	suite.request(http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/status", first.ID), map[string]string{"status": "paid"}, http.StatusOK, nil)
	suite.Equal(models.TableStatusOccupied, suite.tableStatus(table.ID), "second order still open")

	suite.request(http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", second.ID), nil, http.StatusOK, nil)
	suite.Equal(models.TableStatusAvailable, suite.tableStatus(table.ID))
}

// TestReservedTableIsTakenByNewOrder checks a reservation does not block an order
func (suite *OrderIntegrationTestSuite) TestReservedTableIsTakenByNewOrder() {
	table := suite.createTable(2)
	suite.request(http.MethodPatch, fmt.Sprintf("/api/v1/tables/%d/status", table.ID), map[string]string{"status": "reserved"}, http.StatusOK, nil)

	suite.createOrder(map[string]interface{}{"table_id": table.ID, "items": teaItems(1)})
	suite.Equal(models.TableStatusOccupied, suite.tableStatus(table.ID))
}

// TestDeliveryOrderNeverTouchesTables checks delivery orders leave every table alone
func (suite *OrderIntegrationTestSuite) TestDeliveryOrderNeverTouchesTables() {
	table := suite.createTable(3)

	order := suite.createOrder(map[string]interface{}{"order_type": "delivery", "items": teaItems(2)})
	suite.Nil(order.TableID)
	suite.InDelta(120, order.TotalPrice, 0.0001)

	suite.request(http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/status", order.ID), map[string]string{"status": "paid"}, http.StatusOK, nil)
	suite.Equal(models.TableStatusAvailable, suite.tableStatus(table.ID))
}

// TestActiveOrdersQueue checks the kitchen view order
func (suite *OrderIntegrationTestSuite) TestActiveOrdersQueue() {
	table := suite.createTable(4)
	a := suite.createOrder(map[string]interface{}{"table_id": table.ID, "items": teaItems(1)})
	b := suite.createOrder(map[string]interface{}{"table_id": table.ID, "items": teaItems(1)})
	c := suite.createOrder(map[string]interface{}{"order_type": "delivery", "items": teaItems(1)})

	suite.request(http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/status", a.ID), map[string]string{"status": "ready"}, http.StatusOK, nil)
	suite.request(http.MethodPatch, fmt.Sprintf("/api/v1/orders/%d/status", c.ID), map[string]string{"status": "paid"}, http.StatusOK, nil)

	var active []models.Order
	suite.request(http.MethodGet, "/api/v1/orders/active", nil, http.StatusOK, &active)
	suite.Require().Len(active, 2)
	suite.Equal(b.ID, active[0].ID)
	suite.Equal(a.ID, active[1].ID)
}

// TestForwardOnlyPolicyFromConfig checks the configured policy reaches the order service
func (suite *OrderIntegrationTestSuite) TestForwardOnlyPolicyFromConfig() {
	suite.cfg.OrderTransitionPolicy = "forward"
	suite.router, _ = testutil.NewTestRouter(suite.T(), suite.cfg, suite.db, services.NewMockImageService())

	order := suite.createOrder(map[string]interface{}{"order_type": "delivery", "items": teaItems(1)})
	path := fmt.Sprintf("/api/v1/orders/%d/status", order.ID)

	suite.request(http.MethodPatch, path, map[string]string{"status": "served"}, http.StatusOK, nil)
	response := suite.request(http.MethodPatch, path, map[string]string{"status": "pending"}, http.StatusBadRequest, nil)
	suite.Equal("INVALID_TRANSITION", response.Error.Code)
}

func TestOrderIntegrationSuite(t *testing.T) {
	suite.Run(t, new(OrderIntegrationTestSuite))
}
