package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"
	"shopapi/internal/services"
	"shopapi/internal/validate"
)

type OrderHandler struct {
	Orders *services.OrderService
}

type orderLineRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type placeOrderRequest struct {
	ClientID int64              `json:"clientId"`
	Items    []orderLineRequest `json:"items"`
}

type statusRequest struct {
	OrderStatus *domain.OrderStatus `json:"orderStatus"`
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	ds, err := h.Orders.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ds)
}

func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}
	d, err := h.Orders.FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(d)
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.ClientID < 1 {
		return invalid(c, "clientId", "clientId is required")
	}
	if len(req.Items) == 0 {
		return invalid(c, "items", "an order needs at least one item")
	}
	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID < 1 || !validate.Qty(it.Quantity) {
			return invalid(c, "items", "each item needs a productId and a quantity between 1 and 1000")
		}
		lines = append(lines, services.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	d, err := h.Orders.Place(c.UserContext(), req.ClientID, lines)
	if err != nil {
		return err
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id":  d.ID,
		"client_id": req.ClientID,
		"total":     d.Total.StringFixed(2),
	})
	return created(c, "/orders", d.ID, d)
}

func (h *OrderHandler) SetStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.OrderStatus == nil {
		return invalid(c, "orderStatus", "orderStatus is required")
	}
	d, err := h.Orders.SetStatus(c.UserContext(), id, *req.OrderStatus)
	if err != nil {
		return err
	}
	applog.Audit(c, "order.status", map[string]any{"order_id": id, "status": d.OrderStatus.String()})
	return c.JSON(d)
}

func (h *OrderHandler) Pay(c *fiber.Ctx) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}
	d, err := h.Orders.Pay(c.UserContext(), id)
	if err != nil {
		return err
	}
	applog.Audit(c, "order.pay", map[string]any{"order_id": id, "total": d.Total.StringFixed(2)})
	return c.Status(fiber.StatusCreated).JSON(d)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "order")
	if err != nil {
		return err
	}
	if err := h.Orders.Delete(c.UserContext(), id); err != nil {
		return err
	}
	applog.Audit(c, "order.delete", map[string]any{"order_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
