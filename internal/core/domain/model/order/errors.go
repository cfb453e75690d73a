package order

import (
	"errors"
	"fmt"

	"nannyadmin/internal/core/domain/model/kernel"
)

// Sentinel errors for classifying order rule violations with errors.Is.
var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidEntityState     = errors.New("invalid entity state")
	ErrDuplicateEntity        = errors.New("duplicate entity")
	ErrEmptyOrder             = errors.New("empty order")
)

// StateTransitionError is returned when a status change is requested on an
// order that already reached a terminal status. No transitions are permitted
// out of Completed or Cancelled, including to the same status.
type StateTransitionError struct {
	OrderID         kernel.UUID
	CurrentStatus   Status
	RequestedStatus Status
}

// NewStateTransitionError creates a StateTransitionError for the given order and statuses.
func NewStateTransitionError(orderID kernel.UUID, current, requested Status) *StateTransitionError {
	return &StateTransitionError{OrderID: orderID, CurrentStatus: current, RequestedStatus: requested}
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("cannot transition Order '%s' from '%s' to '%s': order is already completed or cancelled",
		e.OrderID, e.CurrentStatus, e.RequestedStatus)
}

func (e *StateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvalidEntityStateError is returned when a mutation is attempted on an
// order that is not in a modifiable state.
type InvalidEntityStateError struct {
	EntityType    string
	EntityID      kernel.UUID
	CurrentState  string
	RequiredState string
}

// NewInvalidEntityStateError creates an InvalidEntityStateError for an order
// that must be modifiable for the attempted operation.
func NewInvalidEntityStateError(orderID kernel.UUID, current Status) *InvalidEntityStateError {
	return &InvalidEntityStateError{
		EntityType:    "Order",
		EntityID:      orderID,
		CurrentState:  current.String(),
		RequiredState: "modifiable state",
	}
}

func (e *InvalidEntityStateError) Error() string {
	return fmt.Sprintf("%s with ID '%s' is in state '%s' but must be in '%s' for this operation",
		e.EntityType, e.EntityID, e.CurrentState, e.RequiredState)
}

func (e *InvalidEntityStateError) Unwrap() error {
	return ErrInvalidEntityState
}

// DuplicateEntityError is returned when adding an order line for a product
// that already has a line on the order.
type DuplicateEntityError struct {
	EntityType    string
	PropertyName  string
	PropertyValue string
}

// NewDuplicateLineError creates a DuplicateEntityError for an order line
// whose product is already present on the order.
func NewDuplicateLineError(productID kernel.UUID) *DuplicateEntityError {
	return &DuplicateEntityError{
		EntityType:    "OrderLine",
		PropertyName:  "ProductId",
		PropertyValue: productID.String(),
	}
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s with %s '%s' already exists", e.EntityType, e.PropertyName, e.PropertyValue)
}

func (e *DuplicateEntityError) Unwrap() error {
	return ErrDuplicateEntity
}

// EmptyOrderError is returned when an order with no lines is asked to
// transition to Completed.
type EmptyOrderError struct {
	OrderID kernel.UUID
}

// NewEmptyOrderError creates an EmptyOrderError for the given order.
func NewEmptyOrderError(orderID kernel.UUID) *EmptyOrderError {
	return &EmptyOrderError{OrderID: orderID}
}

func (e *EmptyOrderError) Error() string {
	return fmt.Sprintf("Order '%s' cannot be completed because it has no order lines", e.OrderID)
}

func (e *EmptyOrderError) Unwrap() error {
	return ErrEmptyOrder
}
