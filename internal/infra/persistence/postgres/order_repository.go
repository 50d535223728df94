package postgres

import (
	"context"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// InsertOrder persists a new materialized order with its line items.
func (repo *orderRepository) InsertOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(orderM).Error
	}); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order with its line items by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrders retrieves all orders with their line items, newest first.
func (repo *orderRepository) FindOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// ReplaceOrder atomically replaces the stored order row and its full line
// item set. The previous snapshot rows are discarded; the caller supplies
// the complete re-materialized aggregate.
func (repo *orderRepository) ReplaceOrder(ctx context.Context, order *entity.Order) error {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.OrderModel{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{
				"user_id": order.UserID,
				"status":  string(order.Status),
				"note":    order.Note,
				"total":   order.Total,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrOrderNotFound
		}

		if err := tx.Where("order_id = ?", order.ID).
			Delete(&model.OrderItemModel{}).Error; err != nil {
			return err
		}

		items := fromOrderItemsDomain(order.ID, order.Items)
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		// Read the row back so the caller sees the refreshed timestamps.
		return tx.Where("id = ?", order.ID).First(&orderM).Error
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return repository.ErrOrderNotFound
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace order")
	}

	// Update the entity with generated values
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// DeleteOrderByID removes an order and its line items by its ID.
func (repo *orderRepository) DeleteOrderByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderLineItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderLineItem{
			ProductID: itemM.ProductID,
			Title:     itemM.Title,
			UnitPrice: itemM.UnitPrice,
			Quantity:  itemM.Quantity,
		})
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		Status:    entity.OrderStatus(data.Status),
		Note:      data.Note,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    string(data.Status),
		Note:      data.Note,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Items:     fromOrderItemsDomain(data.ID, data.Items),
	}
}

// fromOrderItemsDomain converts domain line items to GORM order item rows,
// recording each item's input position.
func fromOrderItemsDomain(orderID uuid.UUID, items []entity.OrderLineItem) []model.OrderItemModel {
	itemModels := make([]model.OrderItemModel, 0, len(items))
	for i, item := range items {
		itemModels = append(itemModels, model.OrderItemModel{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Position:  i,
		})
	}

	return itemModels
}
