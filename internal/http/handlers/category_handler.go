package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"
	"shopapi/internal/services"
	"shopapi/internal/validate"
)

type CategoryHandler struct {
	Cats *services.CategoryService
}

type categoryRequest struct {
	Name *string `json:"name"`
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cs, err := h.Cats.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(cs)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	cat, err := h.Cats.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(cat)
}

func (h *CategoryHandler) name(c *fiber.Ctx, req categoryRequest, required bool) (*string, error) {
	if req.Name == nil {
		if required {
			return nil, invalid(c, "name", "name is required")
		}
		return nil, nil
	}
	n, ok := validate.Name(*req.Name)
	if !ok {
		return nil, invalid(c, "name", "name must be 1-80 characters")
	}
	return &n, nil
}

func (h *CategoryHandler) Insert(c *fiber.Ctx) error {
	var req categoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	n, err := h.name(c, req, true)
	if err != nil {
		return err
	}
	cat, err := h.Cats.Insert(c.UserContext(), domain.Category{Name: *n})
	if err != nil {
		return err
	}
	applog.Audit(c, "category.insert", map[string]any{"category_id": cat.ID})
	return created(c, "/categories", cat.ID, cat)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	n, err := h.name(c, req, false)
	if err != nil {
		return err
	}
	cat, err := h.Cats.Update(c.UserContext(), id, n)
	if err != nil {
		return err
	}
	applog.Audit(c, "category.update", map[string]any{"category_id": id})
	return c.JSON(cat)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	if err := h.Cats.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "category.delete", map[string]any{"category_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	id, err := pathID(c, "category")
	if err != nil {
		return err
	}
	ps, err := h.Cats.Products(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(ps)
}
