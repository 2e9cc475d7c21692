package services

import (
	"fmt"

	"github.com/kendall-kelly/cafe-pos-api/models"
)

// TransitionPolicy decides whether an order may move from one status to another.
// A nil return allows the move.
type TransitionPolicy func(from, to models.OrderStatus) error

// PermissiveTransitions allows any status to be set from any other status.
// The point-of-sale screens only ever advance one step, but staff correct
// mistakes by setting an earlier status directly.
func PermissiveTransitions(from, to models.OrderStatus) error {
	return nil
}

// ForwardOnlyTransitions allows moving to the same or a later status, and
// nothing out of paid.
func ForwardOnlyTransitions(from, to models.OrderStatus) error {
	if from == models.OrderStatusPaid && to != models.OrderStatusPaid {
		return invalid(CodeInvalidTransition, "Order is already paid")
	}
	if to.Rank() < from.Rank() {
		return invalid(CodeInvalidTransition, "Cannot move order from %s back to %s", from, to)
	}
	return nil
}

// TransitionPolicyByName resolves a configured policy name
func TransitionPolicyByName(name string) (TransitionPolicy, error) {
	switch name {
	case "", "permissive":
		return PermissiveTransitions, nil
	case "forward":
		return ForwardOnlyTransitions, nil
	}
	return nil, fmt.Errorf("unknown order transition policy %q", name)
}
