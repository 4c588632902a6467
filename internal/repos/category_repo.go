package repos

import (
	"context"

	"shopapi/internal/domain"
)

type CategoryRepo struct {
	table[domain.Category, int64]
}

func NewCategoryRepo(db Querier) *CategoryRepo {
	return &CategoryRepo{table: idTable[domain.Category](db, "tb_category", "id, name")}
}

func (r *CategoryRepo) Save(ctx context.Context, c *domain.Category) error {
	if c.ID == 0 {
		err := r.db.GetContext(ctx, &c.ID, r.db.Rebind(`INSERT INTO tb_category(name) VALUES(?) RETURNING id`), c.Name)
		return wrap(err, "insert", r.name)
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`
		INSERT INTO tb_category(id, name) VALUES(?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name`), c.ID, c.Name)
	return wrap(err, "upsert", r.name)
}
