package models

import "fmt"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
)

// OrderStatuses lists every order status in forward lifecycle order
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusPaid,
}

// ParseOrderStatus converts a raw string into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// Rank returns the position of the status in the lifecycle, starting at 1 for pending.
// Unknown statuses rank 0.
func (s OrderStatus) Rank() int {
	for i, status := range OrderStatuses {
		if status == s {
			return i + 1
		}
	}
	return 0
}

// IsActive reports whether an order in this status still holds its table
func (s OrderStatus) IsActive() bool {
	return s != OrderStatusPaid
}

// TableStatus is the occupancy state of a physical table
type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
)

// TableStatuses lists every table status
var TableStatuses = []TableStatus{
	TableStatusAvailable,
	TableStatusOccupied,
	TableStatusReserved,
}

// ParseTableStatus converts a raw string into a TableStatus
func ParseTableStatus(s string) (TableStatus, error) {
	for _, status := range TableStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("invalid table status %q", s)
}

// OrderType distinguishes orders eaten at a table from delivery orders
type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeDelivery OrderType = "delivery"
)

// ParseOrderType converts a raw string into an OrderType.
// An empty string means dine_in.
func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(s) {
	case "", OrderTypeDineIn:
		return OrderTypeDineIn, nil
	case OrderTypeDelivery:
		return OrderTypeDelivery, nil
	}
	return "", fmt.Errorf("invalid order type %q", s)
}
