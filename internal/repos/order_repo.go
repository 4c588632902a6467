package repos

import (
	"context"
	"database/sql"

	"shopapi/internal/domain"
)

type OrderRepo struct {
	table[domain.Order, int64]
}

func NewOrderRepo(db Querier) *OrderRepo {
	return &OrderRepo{table: idTable[domain.Order](db, "tb_order", "id, moment, order_status, client_id")}
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	if o.ID == 0 {
		err := r.db.GetContext(ctx, &o.ID, r.db.Rebind(`
			INSERT INTO tb_order(moment, order_status, client_id)
			VALUES(?, ?, ?)
			RETURNING id`), o.Moment, o.Status, o.ClientID)
		return wrap(err, "insert", r.name)
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tb_order(id, moment, order_status, client_id)
		VALUES(?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		  moment = excluded.moment, order_status = excluded.order_status,
		  client_id = excluded.client_id`),
		o.ID, o.Moment, o.Status, o.ClientID)
	return wrap(err, "upsert", r.name)
}

// ByClient lists the orders placed by a user.
func (r *OrderRepo) ByClient(ctx context.Context, clientID int64) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT id, moment, order_status, client_id
		FROM tb_order
		WHERE client_id = ?
		ORDER BY id`), clientID)
	if err != nil {
		return nil, wrap(err, "select", r.name)
	}
	return out, nil
}

// ByProduct lists the distinct orders that contain a product.
func (r *OrderRepo) ByProduct(ctx context.Context, productID int64) ([]domain.Order, error) {
	out := []domain.Order{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT o.id, o.moment, o.order_status, o.client_id
		FROM tb_order o
		WHERE o.id IN (SELECT order_id FROM tb_order_item WHERE product_id = ?)
		ORDER BY o.id`), productID)
	if err != nil {
		return nil, wrap(err, "select", r.name)
	}
	return out, nil
}

// Pay inserts the order's payment and sets the order to PAID in one
// transaction. A second payment for the same order is ErrDuplicate.
func (r *OrderRepo) Pay(ctx context.Context, p *domain.Payment) error {
	return inTx(ctx, r.db, func(q Querier) error {
		if _, err := q.ExecContext(ctx, q.Rebind(`
			INSERT INTO tb_payment(order_id, moment) VALUES(?, ?)`), p.OrderID, p.Moment); err != nil {
			return wrap(err, "insert", "tb_payment")
		}
		res, err := q.ExecContext(ctx, q.Rebind(`UPDATE tb_order SET order_status = ? WHERE id = ?`), domain.Paid, p.OrderID)
		if err != nil {
			return wrap(err, "update", r.name)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return wrap(sql.ErrNoRows, "update", r.name)
		}
		return nil
	})
}
