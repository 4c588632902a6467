package services

import (
	"context"

	"shopapi/internal/domain"

	"github.com/shopspring/decimal"
)

type ProductService struct {
	Prods ProductStore
	Ords  OrderStore
}

func NewProductService(prods ProductStore, orders OrderStore) *ProductService {
	return &ProductService{Prods: prods, Ords: orders}
}

// ProductPatch holds the mutable product fields; nil fields are left unchanged.
// CategoryIDs, when set, replaces the whole category set.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	ImgURL      *string
	CategoryIDs *[]int64
}

func withCategories(ctx context.Context, store ProductStore, ps []domain.Product) ([]domain.Product, error) {
	ids := make([]int64, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	links, err := store.CategoriesOf(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range ps {
		ps[i].Categories = links[ps[i].ID]
		if ps[i].Categories == nil {
			ps[i].Categories = []domain.Category{}
		}
	}
	return ps, nil
}

func (s *ProductService) FindAll(ctx context.Context) ([]domain.Product, error) {
	ps, err := s.Prods.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return withCategories(ctx, s.Prods, ps)
}

func (s *ProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.Prods.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("product", id, err)
	}
	ps, err := withCategories(ctx, s.Prods, []domain.Product{*p})
	if err != nil {
		return nil, err
	}
	return &ps[0], nil
}

func categoriesFromIDs(ids []int64) []domain.Category {
	cs := make([]domain.Category, len(ids))
	for i, id := range ids {
		cs[i] = domain.Category{ID: id}
	}
	return cs
}

// Insert stores a new product and links it to p.Categories (by id).
func (s *ProductService) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID != 0 {
		return nil, domain.Invalid("id is assigned by the store")
	}
	if p.Price.IsNegative() {
		return nil, domain.Invalid("price must not be negative")
	}
	if err := s.Prods.Save(ctx, &p); err != nil {
		return nil, writeErr("product", err)
	}
	return s.FindByID(ctx, p.ID)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error) {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		if patch.Price.IsNegative() {
			return nil, domain.Invalid("price must not be negative")
		}
		p.Price = *patch.Price
	}
	if patch.ImgURL != nil {
		p.ImgURL = *patch.ImgURL
	}
	if patch.CategoryIDs != nil {
		p.Categories = categoriesFromIDs(*patch.CategoryIDs)
	}
	if err := s.Prods.Save(ctx, p); err != nil {
		return nil, writeErr("product", err)
	}
	return s.FindByID(ctx, id)
}

// Delete removes the product and its category links. Products that appear
// on an order are refused.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	ok, err := s.Prods.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "product", ID: id}
	}
	return deleteErr("product", id, s.Prods.DeleteByID(ctx, id))
}

// Orders lists the distinct orders containing the product.
func (s *ProductService) Orders(ctx context.Context, id int64) ([]domain.Order, error) {
	ok, err := s.Prods.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Resource: "product", ID: id}
	}
	return s.Ords.ByProduct(ctx, id)
}
