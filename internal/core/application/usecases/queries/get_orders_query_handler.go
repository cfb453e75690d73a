package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/order"
)

// GetOrdersQueryHandler reads pages of orders with their lines from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of orders, newest first,
// each with its complete line collection and computed total, together with
// the total order count.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (PaginatedResponse[OrderResponse], error) {
	var empty PaginatedResponse[OrderResponse]
	if err := query.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`).Scan(&total).Error; err != nil {
		return empty, err
	}

	orders, err := h.readOrderPage(ctx, query.PageSize(), offset(query.Page(), query.PageSize()))
	if err != nil {
		return empty, err
	}

	if err = h.attachLines(ctx, orders); err != nil {
		return empty, err
	}

	return newPaginatedResponse(orders, query.Page(), query.PageSize(), total), nil
}

func (h GetOrdersQueryHandler) readOrderPage(ctx context.Context, limit, skip int) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0, limit)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, limit, skip).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines loads the lines for every order in the page with one query and
// distributes them to their orders, computing each order's total.
func (h GetOrdersQueryHandler) attachLines(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID.Bytes())
		index[o.ID.Bytes()] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			count,
			price
		FROM order_lines
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var lineID, orderID, productID uuid.UUID
		var count int
		var price decimal.Decimal

		if err = rows.Scan(&lineID, &orderID, &productID, &count, &price); err != nil {
			return err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		line, lineErr := toLineResponse(lineID, productID, count, price)
		if lineErr != nil {
			return lineErr
		}

		orders[i].Lines = append(orders[i].Lines, line)
		orders[i].TotalAmount = orders[i].TotalAmount.Add(price.Mul(decimal.NewFromInt(int64(count))))
	}

	return rows.Err()
}

// scanOrderRow maps one orders row to an OrderResponse without lines.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var empty OrderResponse
	var resp OrderResponse
	var id, customerID uuid.UUID
	var status int

	if err := scan(&id, &customerID, &status, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return empty, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return empty, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return empty, err
	}

	resp.ID = orderID
	resp.CustomerID = ownerID
	resp.Status = order.Status(status).String()
	resp.Lines = make([]OrderLineResponse, 0)
	resp.TotalAmount = decimal.Zero
	return resp, nil
}

func toLineResponse(lineID, productID uuid.UUID, count int, price decimal.Decimal) (OrderLineResponse, error) {
	id, err := kernel.UUIDFromBytes(lineID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	pID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	return OrderLineResponse{
		ID:        id,
		ProductID: pID,
		Count:     count,
		Price:     price,
	}, nil
}
