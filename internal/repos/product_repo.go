package repos

import (
	"context"

	"shopapi/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ProductRepo owns tb_product_category: saving a product rewrites its links.
type ProductRepo struct {
	table[domain.Product, int64]
}

func NewProductRepo(db Querier) *ProductRepo {
	return &ProductRepo{table: idTable[domain.Product](db, "tb_product", "id, name, description, price, img_url")}
}

// Save writes the product row and replaces its category links in one transaction.
func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return inTx(ctx, r.db, func(q Querier) error {
		if p.ID == 0 {
			if err := q.GetContext(ctx, &p.ID, q.Rebind(`
				INSERT INTO tb_product(name, description, price, img_url)
				VALUES(?, ?, ?, ?)
				RETURNING id`), p.Name, p.Description, p.Price, p.ImgURL); err != nil {
				return wrap(err, "insert", r.name)
			}
		} else {
			if _, err := q.ExecContext(ctx, q.Rebind(`
				INSERT INTO tb_product(id, name, description, price, img_url)
				VALUES(?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
				  name = excluded.name, description = excluded.description,
				  price = excluded.price, img_url = excluded.img_url`),
				p.ID, p.Name, p.Description, p.Price, p.ImgURL); err != nil {
				return wrap(err, "upsert", r.name)
			}
		}

		if _, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM tb_product_category WHERE product_id = ?`), p.ID); err != nil {
			return wrap(err, "unlink", "tb_product_category")
		}
		seen := map[int64]bool{}
		for _, id := range p.CategoryIDs() {
			if seen[id] {
				continue
			}
			seen[id] = true
			if _, err := q.ExecContext(ctx, q.Rebind(`
				INSERT INTO tb_product_category(product_id, category_id) VALUES(?, ?)`), p.ID, id); err != nil {
				return wrap(err, "link", "tb_product_category")
			}
		}
		return nil
	})
}

type categoryLink struct {
	ProductID int64 `db:"product_id"`
	domain.Category
}

// CategoriesOf returns the linked categories of each given product, keyed by product id.
func (r *ProductRepo) CategoriesOf(ctx context.Context, productIDs ...int64) (map[int64][]domain.Category, error) {
	out := make(map[int64][]domain.Category, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}
	query, args, err := sqlx.In(`
		SELECT pc.product_id, c.id, c.name
		FROM tb_product_category pc
		JOIN tb_category c ON c.id = pc.category_id
		WHERE pc.product_id IN (?)
		ORDER BY pc.product_id, c.id`, productIDs)
	if err != nil {
		return nil, err
	}
	var links []categoryLink
	if err := r.db.SelectContext(ctx, &links, r.db.Rebind(query), args...); err != nil {
		return nil, wrap(err, "select", "tb_product_category")
	}
	for _, l := range links {
		out[l.ProductID] = append(out[l.ProductID], l.Category)
	}
	return out, nil
}

// ByCategory lists the products linked to a category.
func (r *ProductRepo) ByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(`
		SELECT p.id, p.name, p.description, p.price, p.img_url
		FROM tb_product p
		JOIN tb_product_category pc ON pc.product_id = p.id
		WHERE pc.category_id = ?
		ORDER BY p.id`), categoryID)
	if err != nil {
		return nil, wrap(err, "select", r.name)
	}
	return out, nil
}
