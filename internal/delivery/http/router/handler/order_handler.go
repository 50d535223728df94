package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shoply/internal/delivery/http/response"
	"shoply/internal/domain/entity"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// orderItemRequest carries one product reference. Clients sometimes send
// title or unitPrice alongside; those fields are not bound and never reach
// the snapshot, which is always rebuilt from the catalog.
type orderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type orderRequest struct {
	UserID string             `json:"userId" validate:"required,uuid"`
	Items  []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Status *string            `json:"status" validate:"omitempty,oneof=pending paid shipped cancelled"`
	Note   *string            `json:"note" validate:"omitempty,max=500"`
}

type orderItemResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Title     string    `json:"title"`
	UnitPrice float64   `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

type orderResponse struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Items     []orderItemResponse `json:"items"`
	Status    entity.OrderStatus  `json:"status"`
	Note      string              `json:"note"`
	Total     float64             `json:"total"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

func toOrderResponse(order *entity.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return orderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Status:    order.Status,
		Note:      order.Note,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrderResponses(orders []*entity.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}

	return out
}

func (req *orderRequest) parse() (uuid.UUID, []usecase.OrderItemRef, *entity.OrderStatus, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return uuid.Nil, nil, nil, domainValidationError("userId must be a valid UUID")
	}

	refs := make([]usecase.OrderItemRef, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return uuid.Nil, nil, nil, domainValidationError("productId must be a valid UUID")
		}
		refs = append(refs, usecase.OrderItemRef{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	var status *entity.OrderStatus
	if req.Status != nil {
		s := entity.OrderStatus(*req.Status)
		status = &s
	}

	return userID, refs, status, nil
}

// List handles GET /orders.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponses(orders), "Orders retrieved successfully")
}

// Create handles POST /orders.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, refs, status, err := req.parse()
	if err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), &usecase.CreateOrderInput{
		UserID: userID,
		Items:  refs,
		Status: status,
		Note:   req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order created successfully")
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order retrieved successfully")
}

// Update handles PUT /orders/:id.
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	userID, refs, status, err := req.parse()
	if err != nil {
		return err
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), id, &usecase.UpdateOrderInput{
		UserID: userID,
		Items:  refs,
		Status: status,
		Note:   req.Note,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order updated successfully")
}

// Delete handles DELETE /orders/:id.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}
