package services

import (
	"context"

	"shopapi/internal/domain"
	"shopapi/internal/repos"
)

type CategoryService struct {
	Cats  repos.Repository[domain.Category, int64]
	Prods ProductStore
}

func NewCategoryService(cats repos.Repository[domain.Category, int64], prods ProductStore) *CategoryService {
	return &CategoryService{Cats: cats, Prods: prods}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]domain.Category, error) {
	return s.Cats.FindAll(ctx)
}

func (s *CategoryService) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.Cats.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("category", id, err)
	}
	return c, nil
}

func (s *CategoryService) Insert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.ID != 0 {
		return nil, domain.Invalid("id is assigned by the store")
	}
	if err := s.Cats.Save(ctx, &c); err != nil {
		return nil, writeErr("category", err)
	}
	return &c, nil
}

// Update renames the category; name is its only mutable field.
func (s *CategoryService) Update(ctx context.Context, id int64, name *string) (*domain.Category, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		c.Name = *name
	}
	if err := s.Cats.Save(ctx, c); err != nil {
		return nil, writeErr("category", err)
	}
	return c, nil
}

// Delete refuses categories still linked to a product: the link belongs to
// the product side and is not removed from here.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	ok, err := s.Cats.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "category", ID: id}
	}
	return deleteErr("category", id, s.Cats.DeleteByID(ctx, id))
}

// Products lists the products linked to the category, each with its categories.
func (s *CategoryService) Products(ctx context.Context, id int64) ([]domain.Product, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	ps, err := s.Prods.ByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return withCategories(ctx, s.Prods, ps)
}
