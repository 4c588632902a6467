package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"
	"shopapi/internal/services"
	"shopapi/internal/validate"
)

type ProductHandler struct {
	Prods *services.ProductService
}

type productRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImgURL      *string          `json:"imgUrl"`
	CategoryIDs *[]int64         `json:"categoryIds"`
}

func (r *productRequest) check(c *fiber.Ctx) error {
	if r.Name != nil {
		n, ok := validate.Name(*r.Name)
		if !ok {
			return invalid(c, "name", "name must be 1-80 characters")
		}
		r.Name = &n
	}
	if r.Description != nil {
		d, ok := validate.Text(*r.Description, 2000)
		if !ok {
			return invalid(c, "description", "description is too long")
		}
		r.Description = &d
	}
	if r.Price != nil && !validate.Price(*r.Price) {
		return invalid(c, "price", "price must be a non-negative amount with at most two decimals")
	}
	if r.ImgURL != nil {
		u, ok := validate.ImgURL(*r.ImgURL)
		if !ok {
			return invalid(c, "imgUrl", "imgUrl is not valid")
		}
		r.ImgURL = &u
	}
	return nil
}

func (r productRequest) patch() services.ProductPatch {
	return services.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImgURL:      r.ImgURL,
		CategoryIDs: r.CategoryIDs,
	}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Prods.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	p, err := h.Prods.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) Insert(c *fiber.Ctx) error {
	var req productRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Name == nil || req.Price == nil {
		return invalid(c, "product", "name and price are required")
	}
	if err := req.check(c); err != nil {
		return err
	}
	p := domain.Product{Name: *req.Name, Price: *req.Price}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.ImgURL != nil {
		p.ImgURL = *req.ImgURL
	}
	if req.CategoryIDs != nil {
		for _, id := range *req.CategoryIDs {
			p.Categories = append(p.Categories, domain.Category{ID: id})
		}
	}
	saved, err := h.Prods.Insert(c.UserContext(), p)
	if err != nil {
		return err
	}
	applog.Audit(c, "product.insert", map[string]any{"product_id": saved.ID})
	return created(c, "/products", saved.ID, saved)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	var req productRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.check(c); err != nil {
		return err
	}
	p, err := h.Prods.Update(c.UserContext(), id, req.patch())
	if err != nil {
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	if err := h.Prods.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) Orders(c *fiber.Ctx) error {
	id, err := pathID(c, "product")
	if err != nil {
		return err
	}
	orders, err := h.Prods.Orders(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
