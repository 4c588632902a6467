package services

import (
	"context"

	"shopapi/internal/domain"
	"shopapi/internal/repos"
)

// Relation queries are explicit store methods; nothing is fetched lazily.

type ProductStore interface {
	repos.Repository[domain.Product, int64]
	CategoriesOf(ctx context.Context, productIDs ...int64) (map[int64][]domain.Category, error)
	ByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
}

type OrderStore interface {
	repos.Repository[domain.Order, int64]
	ByClient(ctx context.Context, clientID int64) ([]domain.Order, error)
	ByProduct(ctx context.Context, productID int64) ([]domain.Order, error)
	Pay(ctx context.Context, p *domain.Payment) error
}

type OrderItemStore interface {
	repos.Repository[domain.OrderItem, domain.OrderItemKey]
	ByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
}
