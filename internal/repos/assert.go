package repos

import "shopapi/internal/domain"

var (
	_ Repository[domain.User, int64]                    = (*UserRepo)(nil)
	_ Repository[domain.Category, int64]                = (*CategoryRepo)(nil)
	_ Repository[domain.Product, int64]                 = (*ProductRepo)(nil)
	_ Repository[domain.Order, int64]                   = (*OrderRepo)(nil)
	_ Repository[domain.OrderItem, domain.OrderItemKey] = (*OrderItemRepo)(nil)
	_ Repository[domain.Payment, int64]                 = (*PaymentRepo)(nil)
)
