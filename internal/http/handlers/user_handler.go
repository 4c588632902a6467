package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"
	"shopapi/internal/services"
	"shopapi/internal/validate"
)

type UserHandler struct {
	Users    *services.UserService
	OrderSvc *services.OrderService
}

type userRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (r *userRequest) check(c *fiber.Ctx) error {
	if r.Name != nil {
		n, ok := validate.Name(*r.Name)
		if !ok {
			return invalid(c, "name", "name must be 1-80 characters")
		}
		r.Name = &n
	}
	if r.Email != nil {
		e, ok := validate.Email(*r.Email)
		if !ok {
			return invalid(c, "email", "email is not valid")
		}
		r.Email = &e
	}
	if r.Phone != nil {
		p, ok := validate.Phone(*r.Phone)
		if !ok {
			return invalid(c, "phone", "phone is not valid")
		}
		r.Phone = &p
	}
	return nil
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	us, err := h.Users.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(us)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	u, err := h.Users.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(u)
}

func (h *UserHandler) Insert(c *fiber.Ctx) error {
	var req userRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Name == nil || req.Email == nil {
		return invalid(c, "user", "name and email are required")
	}
	if req.Password == nil || !validate.Password(*req.Password) {
		return invalid(c, "password", "password must be 6-72 characters")
	}
	if err := req.check(c); err != nil {
		return err
	}
	u := domain.User{Name: *req.Name, Email: *req.Email}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	saved, err := h.Users.Insert(c.UserContext(), u, *req.Password)
	if err != nil {
		return err
	}
	applog.Audit(c, "user.insert", map[string]any{"user_id": saved.ID})
	return created(c, "/users", saved.ID, saved)
}

// Update changes name, email and phone. Passwords are not updatable here.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	var req userRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := req.check(c); err != nil {
		return err
	}
	u, err := h.Users.Update(c.UserContext(), id, services.UserPatch{Name: req.Name, Email: req.Email, Phone: req.Phone})
	if err != nil {
		return err
	}
	applog.Audit(c, "user.update", map[string]any{"user_id": id})
	return c.JSON(u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	if err := h.Users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// Orders lists the user's orders as summaries.
func (h *UserHandler) Orders(c *fiber.Ctx) error {
	id, err := pathID(c, "user")
	if err != nil {
		return err
	}
	orders, err := h.OrderSvc.ByClient(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(orders)
}
