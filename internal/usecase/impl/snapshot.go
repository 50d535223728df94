package impl

import (
	"context"
	"fmt"

	"shoply/internal/domain/entity"
	domainerrors "shoply/internal/domain/errors"
	"shoply/internal/domain/repository"
	"shoply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// buildLineItems resolves the given product references against the current
// catalog and freezes each product's name and price into snapshot line
// items, preserving input order.
//
// All distinct products are fetched in one bulk query; the first reference
// with no matching product fails the whole build, in input order, so the
// reported error does not depend on store iteration order. A repeated
// product reference is rejected outright, never merged. Partial snapshots
// are never returned, and the catalog is never mutated.
func buildLineItems(ctx context.Context, productRepo repository.ProductRepository, refs []usecase.OrderItemRef) ([]entity.OrderLineItem, error) {
	if len(refs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}

	seen := make(map[uuid.UUID]struct{}, len(refs))
	distinct := make([]uuid.UUID, 0, len(refs))
	for i, ref := range refs {
		if ref.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity must be >= 1 at index %d", i))
		}
		if _, ok := seen[ref.ProductID]; ok {
			return nil, domainerrors.NewDuplicateReferenceError(i, ref.ProductID)
		}
		seen[ref.ProductID] = struct{}{}
		distinct = append(distinct, ref.ProductID)
	}

	products, err := productRepo.FindProductsByIDs(ctx, distinct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]entity.OrderLineItem, 0, len(refs))
	for _, ref := range refs {
		product, ok := byID[ref.ProductID]
		if !ok {
			return nil, domainerrors.NewNotFoundError(domainerrors.ErrProductNotFound, ref.ProductID)
		}

		// Name and price are copied by value here; the line item keeps no
		// reference to the live product.
		items = append(items, entity.OrderLineItem{
			ProductID: ref.ProductID,
			Title:     product.Name,
			UnitPrice: product.Price,
			Quantity:  ref.Quantity,
		})
	}

	return items, nil
}

// computeTotal sums unitPrice*quantity over snapshot line items. It is a
// pure function over the frozen values — live catalog prices never enter
// the computation. An empty slice yields 0. No clamping: a negative result
// means an upstream invariant was violated, which callers surface as an
// internal fault.
func computeTotal(items []entity.OrderLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}

	return total
}
