package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "shoply/internal/delivery/context"
	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. It is the only write
// path for orders: every create and every update runs the full validation
// pipeline (referenced entities exist, product data snapshotted, total
// recomputed) before the single persist call. Checks run in a fixed order —
// order existence, then user existence, then item resolution — so a request
// with several problems always reports the same first failure.
type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders retrieves all orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return orders, nil
}

// CreateOrder validates and materializes a new order.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	items, total, err := srv.materialize(ctx, input.UserID, input.Items)
	if err != nil {
		return nil, err
	}

	status := entity.OrderStatusPending
	if input.Status != nil {
		status = *input.Status
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status))
	}

	note := ""
	if input.Note != nil {
		note = *input.Note
	}

	order := &entity.Order{
		UserID: input.UserID,
		Items:  items,
		Status: status,
		Note:   note,
		Total:  total,
	}

	if err := srv.orderRepo.InsertOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("userID", order.UserID.String()),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// GetOrder retrieves an order by ID.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrOrderNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// UpdateOrder re-validates and re-materializes an existing order. The
// submitted user and items go through the same pipeline as a create, so
// the new snapshot reflects current product data, not the previous line
// item values. Omitted status/note retain their stored values.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	existing, err := srv.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrOrderNotFound, id)
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	items, total, err := srv.materialize(ctx, input.UserID, input.Items)
	if err != nil {
		return nil, err
	}

	status := existing.Status
	if input.Status != nil {
		status = *input.Status
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status))
	}

	note := existing.Note
	if input.Note != nil {
		note = *input.Note
	}

	order := &entity.Order{
		ID:        existing.ID,
		UserID:    input.UserID,
		Items:     items,
		Status:    status,
		Note:      note,
		Total:     total,
		CreatedAt: existing.CreatedAt,
	}

	if err := srv.orderRepo.ReplaceOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to replace order")
	}

	srv.log(ctx).Info("Order updated",
		slog.String("orderID", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)

	return order, nil
}

// DeleteOrder removes an order by ID.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := srv.orderRepo.DeleteOrderByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.NewNotFoundError(domainerrors.ErrOrderNotFound, id)
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// materialize runs the shared validation pipeline: the referenced user must
// exist, every product reference must resolve, and the total is computed
// from the frozen snapshot. Everything happens in memory — nothing is
// persisted here, so a rejection leaves no partial order behind.
func (srv *orderService) materialize(ctx context.Context, userID uuid.UUID, refs []usecase.OrderItemRef) ([]entity.OrderLineItem, float64, error) {
	if _, err := srv.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, 0, domainerrors.NewNotFoundError(domainerrors.ErrUserNotFound, userID)
		}

		return nil, 0, errors.Wrap(err, "failed to find user by ID")
	}

	items, err := buildLineItems(ctx, srv.productRepo, refs)
	if err != nil {
		return nil, 0, err
	}

	total := computeTotal(items)
	if total < 0 || len(items) != len(refs) {
		// An upstream contract was violated; report it, never repair it.
		return nil, 0, domainerrors.ErrInternalConsistency.WithDetails(
			fmt.Sprintf("total %.2f over %d items for %d references", total, len(items), len(refs)))
	}

	return items, total, nil
}
