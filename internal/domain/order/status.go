package order

import (
	"errors"
	"slices"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
	StatusPaid       Status = "paid"
	StatusCancelled  Status = "cancelled"
)

var AvailableStatuses = []Status{
	StatusOpen, StatusInProgress, StatusReady, StatusDelivered, StatusPaid, StatusCancelled,
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid order status")
}

// Closing reports whether entering this status closes the tab and stamps closed_at.
func (s Status) Closing() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Transitions is the validated order-status graph. It is injected into the
// service so a deployment can relax or tighten the flow in one place.
type Transitions map[Status][]Status

// DefaultTransitions is the enforced flow:
// open -> in_progress -> ready -> delivered -> paid, with cancellation
// possible at any stage and a direct open -> paid shortcut for walk-in tabs.
// paid and cancelled are terminal.
func DefaultTransitions() Transitions {
	return Transitions{
		StatusOpen:       {StatusInProgress, StatusPaid, StatusCancelled},
		StatusInProgress: {StatusReady, StatusCancelled},
		StatusReady:      {StatusDelivered, StatusCancelled},
		StatusDelivered:  {StatusPaid, StatusCancelled},
		StatusPaid:       {},
		StatusCancelled:  {},
	}
}

func (t Transitions) CanTransition(from, to Status) bool {
	return slices.Contains(t[from], to)
}

// ItemStatus is the kitchen-side state of one line.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusPreparing ItemStatus = "preparing"
	ItemStatusServed    ItemStatus = "served"
	ItemStatusCancelled ItemStatus = "cancelled"
)

var AvailableItemStatuses = []ItemStatus{
	ItemStatusPending, ItemStatusPreparing, ItemStatusServed, ItemStatusCancelled,
}

func NewItemStatus(raw string) (ItemStatus, error) {
	if slices.Contains(AvailableItemStatuses, ItemStatus(raw)) {
		return ItemStatus(raw), nil
	}
	return "", errors.New("invalid order item status")
}

// CanBeUpdatedTo enforces pending -> preparing -> served, with cancellation
// allowed from any non-terminal state.
func (s ItemStatus) CanBeUpdatedTo(newStatus ItemStatus) bool {
	switch s {
	case ItemStatusPending:
		return slices.Contains([]ItemStatus{ItemStatusPreparing, ItemStatusServed, ItemStatusCancelled}, newStatus)
	case ItemStatusPreparing:
		return slices.Contains([]ItemStatus{ItemStatusServed, ItemStatusCancelled}, newStatus)
	case ItemStatusServed, ItemStatusCancelled:
		return false
	default:
		return false
	}
}

// Removable reports whether the line may still be deleted from its order.
// Lines already in the kitchen or on the table are locked.
func (s ItemStatus) Removable() bool {
	return s != ItemStatusPreparing && s != ItemStatusServed
}
