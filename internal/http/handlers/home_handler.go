package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/domain"
	"shopapi/internal/services"
)

type HomeHandler struct {
	Users  *services.UserService
	Orders *services.OrderService
	Prods  *services.ProductService
	Cats   *services.CategoryService
}

type resourceLink struct {
	Name  string
	Path  string
	Count int
}

// Index renders a small HTML page listing each collection and its size.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	ctx := c.UserContext()
	users, err := h.Users.FindAll(ctx)
	if err != nil {
		return err
	}
	orders, err := h.Orders.Orders.FindAll(ctx)
	if err != nil {
		return err
	}
	prods, err := h.Prods.Prods.FindAll(ctx)
	if err != nil {
		return err
	}
	cats, err := h.Cats.FindAll(ctx)
	if err != nil {
		return err
	}
	statuses := make([]string, 0, len(domain.OrderStatuses()))
	for _, s := range domain.OrderStatuses() {
		statuses = append(statuses, s.String())
	}
	return render(c, "index", fiber.Map{
		"Resources": []resourceLink{
			{Name: "Users", Path: "/users", Count: len(users)},
			{Name: "Orders", Path: "/orders", Count: len(orders)},
			{Name: "Products", Path: "/products", Count: len(prods)},
			{Name: "Categories", Path: "/categories", Count: len(cats)},
		},
		"Statuses": statuses,
	})
}
