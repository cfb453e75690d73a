package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"nannyadmin/internal/core/application/usecases/commands"
	"nannyadmin/internal/core/application/usecases/queries"
	"nannyadmin/internal/core/domain/model/customer"
	"nannyadmin/internal/core/domain/model/kernel"
	"nannyadmin/internal/core/domain/model/order"
	"nannyadmin/internal/core/domain/model/product"
	"nannyadmin/internal/generated/servers"
	"nannyadmin/internal/pkg/errs"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler    commands.CreateCustomerCommandHandler
	updateCustomerHandler    commands.UpdateCustomerCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	addOrderLineHandler      commands.AddOrderLineCommandHandler
	removeOrderLineHandler   commands.RemoveOrderLineCommandHandler

	// Query handlers
	getCustomersHandler    queries.GetCustomersQueryHandler
	getCustomerByIDHandler queries.GetCustomerByIDQueryHandler
	getProductsHandler     queries.GetProductsQueryHandler
	getProductByIDHandler  queries.GetProductByIDQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getCustomerByIDHandler queries.GetCustomerByIDQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getProductByIDHandler queries.GetProductByIDQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		updateCustomerHandler:    updateCustomerHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		addOrderLineHandler:      addOrderLineHandler,
		removeOrderLineHandler:   removeOrderLineHandler,
		getCustomersHandler:      getCustomersHandler,
		getCustomerByIDHandler:   getCustomerByIDHandler,
		getProductsHandler:       getProductsHandler,
		getProductByIDHandler:    getProductByIDHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
	}
}

// GetCustomers handles GET /api/v1/customers - retrieves one page of customers.
func (s *Server) GetCustomers(ctx echo.Context, params servers.GetCustomersParams) error {
	query, err := queries.NewGetCustomersQuery(pageOrDefault(params.Page), pageSizeOrDefault(params.PageSize))
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Customer, len(page.Items))
	for i, c := range page.Items {
		items[i] = customerReadModelToAPI(c)
	}

	return ctx.JSON(http.StatusOK, servers.CustomerPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	})
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.CreateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.LastName, body.Address, body.PhotoUrl)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerToAPI(created))
}

// GetCustomerById handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomerById(ctx echo.Context, customerId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getCustomerByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerReadModelToAPI(found))
}

// UpdateCustomer handles PUT /api/v1/customers/{customerId} - full replacement
// of the customer profile.
func (s *Server) UpdateCustomer(ctx echo.Context, customerId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var body servers.UpdateCustomerJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, body.Name, body.LastName, body.Address, body.PhotoUrl)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerToAPI(updated))
}

// GetProducts handles GET /api/v1/products - retrieves one page of products.
func (s *Server) GetProducts(ctx echo.Context, params servers.GetProductsParams) error {
	query, err := queries.NewGetProductsQuery(pageOrDefault(params.Page), pageSizeOrDefault(params.PageSize))
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Product, len(page.Items))
	for i, p := range page.Items {
		items[i] = productReadModelToAPI(p)
	}

	return ctx.JSON(http.StatusOK, servers.ProductPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	})
}

// CreateProduct handles POST /api/v1/products - registers a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(body.Name, decimal.NewFromFloat(body.Price))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToAPI(created))
}

// GetProductById handles GET /api/v1/products/{productId}.
func (s *Server) GetProductById(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getProductByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productReadModelToAPI(found))
}

// UpdateProduct handles PUT /api/v1/products/{productId}.
// Price changes do not affect lines of existing orders.
func (s *Server) UpdateProduct(ctx echo.Context, productId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(productId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var body servers.UpdateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, body.Name, decimal.NewFromFloat(body.Price))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToAPI(updated))
}

// GetOrders handles GET /api/v1/orders - retrieves one page of orders, newest first.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	query, err := queries.NewGetOrdersQuery(pageOrDefault(params.Page), pageSizeOrDefault(params.PageSize))
	if err != nil {
		return writeError(ctx, err)
	}

	page, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]servers.Order, len(page.Items))
	for i, o := range page.Items {
		items[i] = orderReadModelToAPI(o)
	}

	return ctx.JSON(http.StatusOK, servers.OrderPage{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order for a customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.CustomerId[:])
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var lines []commands.OrderLineInput
	if body.Lines != nil {
		for _, l := range *body.Lines {
			productID, lineErr := kernel.UUIDFromBytes(l.ProductId[:])
			if lineErr != nil {
				return badRequest(ctx, "Invalid product id")
			}
			lines = append(lines, commands.OrderLineInput{ProductID: productID, Count: l.Count})
		}
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToAPI(created))
}

// GetOrderById handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	found, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToAPI(found))
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err)
	}

	changed, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(changed))
}

// AddOrderLine handles POST /api/v1/orders/{orderId}/lines.
func (s *Server) AddOrderLine(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body servers.AddOrderLineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(body.ProductId[:])
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewAddOrderLineCommand(id, productID, body.Count)
	if err != nil {
		return writeError(ctx, err)
	}

	changed, err := s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(changed))
}

// RemoveOrderLine handles DELETE /api/v1/orders/{orderId}/lines/{lineId}.
func (s *Server) RemoveOrderLine(ctx echo.Context, orderId openapi_types.UUID, lineId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	lineID, err := kernel.UUIDFromBytes(lineId[:])
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	cmd, err := commands.NewRemoveOrderLineCommand(id, lineID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pageOrDefault(page *int) int {
	if page == nil {
		return defaultPage
	}
	return *page
}

func pageSizeOrDefault(pageSize *int) int {
	if pageSize == nil {
		return defaultPageSize
	}
	return *pageSize
}

// writeError translates application and domain errors into HTTP responses.
// Missing resources map to 404, rejected input to 400, state conflicts to 409,
// everything else to 500.
func writeError(ctx echo.Context, err error) error {
	var validationErr *errs.DomainValidationError
	if errors.As(err, &validationErr) {
		fieldErrors := validationErr.Errors
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:        http.StatusBadRequest,
			Message:     err.Error(),
			FieldErrors: &fieldErrors,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStateTransition),
		errors.Is(err, order.ErrInvalidEntityState),
		errors.Is(err, order.ErrDuplicateEntity),
		errors.Is(err, errs.ErrOperationFailed):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func customerToAPI(c *customer.Customer) servers.Customer {
	return servers.Customer{
		Id:       c.ID().Bytes(),
		Name:     c.Name(),
		LastName: c.LastName(),
		Address:  c.Address(),
		PhotoUrl: c.PhotoURL(),
	}
}

func customerReadModelToAPI(c queries.CustomerResponse) servers.Customer {
	return servers.Customer{
		Id:       c.ID.Bytes(),
		Name:     c.Name,
		LastName: c.LastName,
		Address:  c.Address,
		PhotoUrl: c.PhotoURL,
	}
}

func productToAPI(p *product.Product) servers.Product {
	return servers.Product{
		Id:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price().InexactFloat64(),
	}
}

func productReadModelToAPI(p queries.ProductResponse) servers.Product {
	return servers.Product{
		Id:    p.ID.Bytes(),
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
	}
}

func orderToAPI(o *order.Order) servers.Order {
	lines := make([]servers.OrderLine, len(o.Lines()))
	for i, line := range o.Lines() {
		lines[i] = servers.OrderLine{
			Id:        line.ID().Bytes(),
			ProductId: line.ProductID().Bytes(),
			Count:     line.Count(),
			Price:     line.Price().InexactFloat64(),
		}
	}

	return servers.Order{
		Id:          o.ID().Bytes(),
		CustomerId:  o.CustomerID().Bytes(),
		Status:      servers.OrderStatus(o.Status().String()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Lines:       lines,
		TotalAmount: o.TotalAmount().InexactFloat64(),
	}
}

func orderReadModelToAPI(o queries.OrderResponse) servers.Order {
	lines := make([]servers.OrderLine, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = servers.OrderLine{
			Id:        line.ID.Bytes(),
			ProductId: line.ProductID.Bytes(),
			Count:     line.Count,
			Price:     line.Price.InexactFloat64(),
		}
	}

	return servers.Order{
		Id:          o.ID.Bytes(),
		CustomerId:  o.CustomerID.Bytes(),
		Status:      servers.OrderStatus(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Lines:       lines,
		TotalAmount: o.TotalAmount.InexactFloat64(),
	}
}
