package order

import (
	"errors"
	"time"

	"nannyadmin/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's order. It owns its OrderLine
// collection exclusively and is the one consistency boundary of the domain:
// every line mutation and every status transition goes through it, and the
// whole aggregate is loaded and saved as a unit.
//
// Order maintains these invariants:
//   - An order is modifiable only while its status is non-terminal
//     (not Completed and not Cancelled).
//   - An order may transition to Completed only if it has at least one line.
//   - No two lines reference the same product.
//   - The creation timestamp never changes; the update timestamp is set on
//     every mutation and only on mutations.
//
// The struct uses private fields to ensure encapsulation; state is mutated
// exclusively through the validated methods below.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer by identity only
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is set at construction and immutable afterwards
	createdAt time.Time

	// updatedAt is nil until the first mutation, then tracks the latest one
	updatedAt *time.Time

	// lines is the owned collection of order lines, keyed by product
	lines []*OrderLine

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order for the given customer with a fresh identity,
// Created status, the current time as creation timestamp, and no lines.
//
// The aggregate does not check that the customer exists; callers resolve the
// customer through its repository before constructing the order.
//
// Example:
//
//	o, err := order.NewOrder(customerID)
//	if err != nil {
//	    // customerID was not a valid identifier
//	}
func NewOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		status:        Created,
		createdAt:     time.Now().UTC(),
		lines:         make([]*OrderLine, 0),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with its original
// identity, status, timestamps, and lines. It is also the supported way for
// tests to obtain an aggregate in an arbitrary valid status without going
// through the lifecycle.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
	lines []*OrderLine,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	restored := make([]*OrderLine, 0, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		restored = append(restored, line)
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		lines:         restored,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer that owns the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the latest mutation,
// or nil if the order was never mutated after construction.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// Lines returns the order's lines. The returned slice is a copy; the
// collection itself can only be changed through AddLine and RemoveLine.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// CanBeModified reports whether the order accepts mutations.
// True while the status is non-terminal, false once the order is
// Completed or Cancelled.
func (o *Order) CanBeModified() bool {
	return !o.status.IsTerminal()
}

// HasLines reports whether the order has at least one line.
func (o *Order) HasLines() bool {
	return len(o.lines) > 0
}

// ChangeStatus transitions the order to the given status.
//
// Rules enforced, in precedence order:
//   - A terminal order rejects every transition with StateTransitionError,
//     including a transition to its own status.
//   - Completed is reachable only with at least one line; an empty order
//     fails with EmptyOrderError.
//
// Any other transition is allowed: Created to Cancelled, InProgress back to
// Created, Created straight to Completed with lines. The aggregate gates the
// terminal boundary and the completion rule, nothing more.
//
// On success the status is set and the update timestamp is touched.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if !o.CanBeModified() {
		return NewStateTransitionError(o.id, o.status, status)
	}

	if status == Completed && !o.HasLines() {
		return NewEmptyOrderError(o.id)
	}

	o.status = status
	o.touch()
	return nil
}

// AddLine appends a line to the order.
//
// Fails with InvalidEntityStateError if the order is no longer modifiable,
// and with DuplicateEntityError if a line for the same product already
// exists. The existing line's count and price are left untouched in the
// duplicate case.
//
// On success the line is appended and the update timestamp is touched.
func (o *Order) AddLine(line *OrderLine) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if !o.CanBeModified() {
		return NewInvalidEntityStateError(o.id, o.status)
	}

	for _, existing := range o.lines {
		if existing.ProductID().IsEqual(line.ProductID()) {
			return NewDuplicateLineError(line.ProductID())
		}
	}

	o.lines = append(o.lines, line)
	o.touch()
	return nil
}

// RemoveLine removes the line with the given identity from the order.
//
// Fails with InvalidEntityStateError if the order is no longer modifiable.
// Removing an unknown line id is a silent idempotent no-op that leaves the
// update timestamp untouched. Callers that need a not-found signal check
// existence before calling.
func (o *Order) RemoveLine(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	if !o.CanBeModified() {
		return NewInvalidEntityStateError(o.id, o.status)
	}

	for i, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			o.touch()
			return nil
		}
	}

	return nil
}

// Line returns the line with the given identity, or nil if no such line exists.
func (o *Order) Line(lineID kernel.UUID) *OrderLine {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line
		}
	}
	return nil
}

// TotalAmount returns the sum of price times count over all lines.
// Returns zero for an order without lines. Pure query, no side effects.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// touch records the current time as the latest mutation timestamp.
func (o *Order) touch() {
	now := time.Now().UTC()
	o.updatedAt = &now
}
