package repos

import (
	"context"

	"shopapi/internal/domain"
)

// PaymentRepo is keyed by the owning order's id.
type PaymentRepo struct {
	table[domain.Payment, int64]
}

func NewPaymentRepo(db Querier) *PaymentRepo {
	return &PaymentRepo{table: table[domain.Payment, int64]{
		db:      db,
		name:    "tb_payment",
		columns: "order_id, moment",
		keyCols: []string{"order_id"},
		keyArgs: func(id int64) []any { return []any{id} },
	}}
}

func (r *PaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tb_payment(order_id, moment) VALUES(?, ?)
		ON CONFLICT(order_id) DO UPDATE SET moment = excluded.moment`), p.OrderID, p.Moment)
	return wrap(err, "upsert", r.name)
}
