package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// CreateOrderInput holds the data needed to place an order
type CreateOrderInput struct {
	TableID   *uint
	Items     models.OrderItems
	Notes     string
	OrderType string
}

// UpdateOrderInput holds a partial order update. Nil fields are left unchanged.
type UpdateOrderInput struct {
	Items  models.OrderItems
	Notes  *string
	Status *string
}

// OrderService manages the order ledger and the table occupancy it drives
type OrderService struct {
	store    repository.Store
	policy   TransitionPolicy
	now      func() time.Time
	location *time.Location
}

// NewOrderService creates an order service. A nil policy means PermissiveTransitions.
func NewOrderService(store repository.Store, policy TransitionPolicy) *OrderService {
	if policy == nil {
		policy = PermissiveTransitions
	}
	return &OrderService{
		store:    store,
		policy:   policy,
		now:      time.Now,
		location: time.Local,
	}
}

// WithClock overrides the clock and time zone used to decide what "today" is
func (s *OrderService) WithClock(now func() time.Time, location *time.Location) *OrderService {
	s.now = now
	s.location = location
	return s
}

// ListOrders returns every order, newest first
func (s *OrderService) ListOrders() ([]models.Order, error) {
	return s.store.Orders().List()
}

// GetOrder returns a single order
func (s *OrderService) GetOrder(id uint) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(id)
	if err != nil {
		return nil, orderLookupError(err, id)
	}
	return order, nil
}

// ListOrdersByTable returns all orders placed at a table, newest first
func (s *OrderService) ListOrdersByTable(tableID uint) ([]models.Order, error) {
	if _, err := s.store.Tables().GetByID(tableID); err != nil {
		return nil, tableLookupError(err, tableID)
	}
	return s.store.Orders().ListByTable(tableID)
}

// ListActiveOrders returns every order that is not paid, by lifecycle stage
// and then by age, oldest first
func (s *OrderService) ListActiveOrders() ([]models.Order, error) {
	return s.store.Orders().ListActive()
}

// CreateOrder validates and stores a new pending order. A dine-in order marks
// its table occupied whatever the table's previous status was.
func (s *OrderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	orderType, err := models.ParseOrderType(in.OrderType)
	if err != nil {
		return nil, invalid(CodeInvalidOrderType, "Invalid order type. Must be: dine_in or delivery")
	}

	tableID := in.TableID
	if orderType == models.OrderTypeDelivery {
		tableID = nil
	} else if tableID == nil || *tableID == 0 {
		return nil, invalid(CodeMissingField, "Table ID is required for dine-in orders")
	}

	items, err := snapshotItems(in.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		TableID:   tableID,
		Status:    models.OrderStatusPending,
		Notes:     in.Notes,
		OrderType: orderType,
	}
	order.SetItems(items)

	err = s.store.Transaction(func(tx repository.Store) error {
		if tableID != nil {
			if _, err := tx.Tables().GetByID(*tableID); err != nil {
				return tableLookupError(err, *tableID)
			}
		}

		if err := tx.Orders().Create(order); err != nil {
			return err
		}

		if tableID != nil {
			return tx.Tables().UpdateStatus(*tableID, models.TableStatusOccupied)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Order %d created (%s, total %.2f)", order.ID, orderType, order.TotalPrice)
	return s.GetOrder(order.ID)
}

// UpdateOrder applies a partial update. Replacing the items recomputes the
// total; leaving them out keeps the stored total.
func (s *OrderService) UpdateOrder(id uint, in UpdateOrderInput) (*models.Order, error) {
	var items models.OrderItems
	if in.Items != nil {
		var err error
		if items, err = snapshotItems(in.Items); err != nil {
			return nil, err
		}
	}

	var status models.OrderStatus
	if in.Status != nil {
		var err error
		if status, err = parseOrderStatus(*in.Status); err != nil {
			return nil, err
		}
	}

	err := s.store.Transaction(func(tx repository.Store) error {
		order, err := tx.Orders().GetByID(id)
		if err != nil {
			return orderLookupError(err, id)
		}

		if items != nil {
			order.SetItems(items)
		}
		if in.Notes != nil {
			order.Notes = *in.Notes
		}
		if in.Status != nil {
			if err := s.policy(order.Status, status); err != nil {
				return err
			}
			order.Status = status
		}

		if err := tx.Orders().Update(order); err != nil {
			return err
		}

		if in.Status != nil && status == models.OrderStatusPaid && order.TableID != nil {
			_, err := releaseTableIfIdle(tx, *order.TableID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(id)
}

// SetOrderStatus moves an order to a new status. Paying an order frees its
// table once no other active order remains there.
func (s *OrderService) SetOrderStatus(id uint, rawStatus string) (*models.Order, error) {
	status, err := parseOrderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(func(tx repository.Store) error {
		order, err := tx.Orders().GetByID(id)
		if err != nil {
			return orderLookupError(err, id)
		}

		if err := s.policy(order.Status, status); err != nil {
			return err
		}

		if err := tx.Orders().UpdateStatus(id, status); err != nil {
			return err
		}

		if status == models.OrderStatusPaid && order.TableID != nil {
			_, err := releaseTableIfIdle(tx, *order.TableID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(id)
}

// DeleteOrder removes an order outright and frees its table when it was the
// last active order there. Deleted orders never count as revenue.
func (s *OrderService) DeleteOrder(id uint) (*models.Order, error) {
	var deleted *models.Order

	err := s.store.Transaction(func(tx repository.Store) error {
		order, err := tx.Orders().GetByID(id)
		if err != nil {
			return orderLookupError(err, id)
		}

		if err := tx.Orders().Delete(id); err != nil {
			return err
		}
		deleted = order

		if order.TableID != nil {
			_, err := releaseTableIfIdle(tx, *order.TableID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Order %d deleted", id)
	return deleted, nil
}

// GetOrderStats returns counts per active status, the value of active orders
// and the revenue of orders created today and paid
func (s *OrderService) GetOrderStats() (*models.OrderStats, error) {
	stats, err := s.store.Orders().Stats()
	if err != nil {
		return nil, err
	}

	paid, err := s.store.Orders().ListByStatus(models.OrderStatusPaid)
	if err != nil {
		return nil, err
	}

	today := businessDate(s.now(), s.location)
	for _, order := range paid {
		if businessDate(order.CreatedAt, s.location) == today {
			stats.TodayRevenue += order.TotalPrice
		}
	}

	return &stats, nil
}

// snapshotItems validates client supplied items and copies them into a fresh
// slice owned by the order
func snapshotItems(items models.OrderItems) (models.OrderItems, error) {
	if len(items) == 0 {
		return nil, invalid(CodeEmptyItems, "Items array is required and must not be empty")
	}

	snapshot := make(models.OrderItems, 0, len(items))
	for i, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		item.Category = strings.TrimSpace(item.Category)

		switch {
		case item.Name == "":
			return nil, invalid(CodeInvalidItem, "Item %d must have a name", i+1)
		case item.Price <= 0:
			return nil, invalid(CodeInvalidItem, "Item %q must have a price greater than 0", item.Name)
		case item.Quantity < 1:
			return nil, invalid(CodeInvalidItem, "Item %q quantity must be at least 1", item.Name)
		}

		snapshot = append(snapshot, item)
	}
	return snapshot, nil
}

func parseOrderStatus(raw string) (models.OrderStatus, error) {
	status, err := models.ParseOrderStatus(raw)
	if err != nil {
		return "", invalid(CodeInvalidStatus, "Invalid status. Must be: pending, preparing, ready, served, or paid")
	}
	return status, nil
}

func orderLookupError(err error, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(CodeOrderNotFound, "Order %d not found", id)
	}
	return err
}

func tableLookupError(err error, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(CodeTableNotFound, "Table %d not found", id)
	}
	return err
}
