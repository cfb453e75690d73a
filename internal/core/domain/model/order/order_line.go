package order

import (
	"errors"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine instance was not
// created through the NewOrderLine or RestoreOrderLine factory methods.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine or RestoreOrderLine constructor")

// OrderLine is a line item inside the Order aggregate. It records the ordered
// product, the quantity, and the product's price as it was at the moment the
// line was added. The price is a snapshot: later product price changes never
// affect existing lines.
//
// OrderLine is immutable after construction. There are no setters; replacing
// a line means removing it and adding a new one through the Order aggregate.
// Lines have no lifecycle of their own outside an order.
type OrderLine struct {
	id        kernel.UUID
	orderID   kernel.UUID
	productID kernel.UUID
	count     int
	price     decimal.Decimal

	isConstructed bool
}

// NewOrderLine creates a line for the given order and product with a fresh
// identity. Count must be greater than zero and price must not be negative;
// both checks run and all violations are reported together in a single
// DomainValidationError with entity type "OrderLine".
func NewOrderLine(orderID, productID kernel.UUID, count int, price decimal.Decimal) (*OrderLine, error) {
	if err := errors.Join(orderID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if err := validateOrderLineData(count, price); err != nil {
		return nil, err
	}

	return &OrderLine{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		productID:     productID,
		count:         count,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreOrderLine reconstructs a line from persistence with its original
// identity. The same field constraints apply as in NewOrderLine.
func RestoreOrderLine(id, orderID, productID kernel.UUID, count int, price decimal.Decimal) (*OrderLine, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	if err := validateOrderLineData(count, price); err != nil {
		return nil, err
	}

	return &OrderLine{
		id:            id,
		orderID:       orderID,
		productID:     productID,
		count:         count,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the OrderLine instance was properly constructed through a factory method.
func (l *OrderLine) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the order that owns this line.
func (l *OrderLine) OrderID() kernel.UUID {
	return l.orderID
}

// ProductID returns the identifier of the ordered product.
func (l *OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// Count returns the ordered quantity.
func (l *OrderLine) Count() int {
	return l.count
}

// Price returns the unit price snapshotted when the line was added.
func (l *OrderLine) Price() decimal.Decimal {
	return l.price
}

// Subtotal returns price multiplied by count.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.price.Mul(decimal.NewFromInt(int64(l.count)))
}

func validateOrderLineData(count int, price decimal.Decimal) error {
	fieldErrors := make(map[string][]string)

	if count <= 0 {
		fieldErrors["Count"] = []string{"Count must be greater than zero."}
	}

	if price.IsNegative() {
		fieldErrors["Price"] = []string{"Price cannot be negative."}
	}

	if len(fieldErrors) > 0 {
		return errs.NewDomainValidationError("OrderLine", fieldErrors)
	}
	return nil
}
