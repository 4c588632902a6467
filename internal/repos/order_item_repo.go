package repos

import (
	"context"

	"shopapi/internal/domain"
)

type OrderItemRepo struct {
	table[domain.OrderItem, domain.OrderItemKey]
}

func NewOrderItemRepo(db Querier) *OrderItemRepo {
	return &OrderItemRepo{table: table[domain.OrderItem, domain.OrderItemKey]{
		db:      db,
		name:    "tb_order_item",
		columns: "order_id, product_id, quantity, price",
		keyCols: []string{"order_id", "product_id"},
		keyArgs: func(k domain.OrderItemKey) []any { return []any{k.OrderID, k.ProductID} },
	}}
}

// Save inserts the line or, when the key exists, updates its quantity.
// The stored price of an existing line is never overwritten.
func (r *OrderItemRepo) Save(ctx context.Context, it *domain.OrderItem) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tb_order_item(order_id, product_id, quantity, price)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(order_id, product_id) DO UPDATE SET quantity = excluded.quantity`),
		it.OrderID, it.ProductID, it.Quantity, it.Price)
	if err != nil {
		return wrap(err, "upsert", r.name)
	}
	stored, err := r.FindByID(ctx, it.Key())
	if err != nil {
		return err
	}
	*it = *stored
	return nil
}

// ByOrder lists the lines of one order.
func (r *OrderItemRepo) ByOrder(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	out := []domain.OrderItem{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT order_id, product_id, quantity, price
		FROM tb_order_item
		WHERE order_id = ?
		ORDER BY product_id`), orderID)
	if err != nil {
		return nil, wrap(err, "select", r.name)
	}
	return out, nil
}
