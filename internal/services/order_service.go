package services

import (
	"context"
	"fmt"

	"shopapi/internal/domain"
	"shopapi/internal/repos"
)

// ProductLookup resolves the products shown on order lines.
type ProductLookup interface {
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
}

type OrderService struct {
	Orders   OrderStore
	Items    OrderItemStore
	Payments repos.Repository[domain.Payment, int64]
	Users    repos.Repository[domain.User, int64]
	Prods    ProductLookup
}

func NewOrderService(orders OrderStore, items OrderItemStore, payments repos.Repository[domain.Payment, int64],
	users repos.Repository[domain.User, int64], prods ProductLookup) *OrderService {
	return &OrderService{Orders: orders, Items: items, Payments: payments, Users: users, Prods: prods}
}

// OrderLine is one requested product on a new order.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

func (s *OrderService) detail(ctx context.Context, o domain.Order, cache map[int64]domain.Product) (*domain.OrderDetail, error) {
	client, err := s.Users.FindByID(ctx, o.ClientID)
	if err != nil {
		return nil, fmt.Errorf("order %d client %d: %w", o.ID, o.ClientID, err)
	}
	items, err := s.Items.ByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if _, ok := cache[it.ProductID]; ok {
			continue
		}
		p, err := s.Prods.FindByID(ctx, it.ProductID)
		if err != nil {
			return nil, fmt.Errorf("order %d product %d: %w", o.ID, it.ProductID, err)
		}
		cache[p.ID] = *p
	}
	var pay *domain.Payment
	switch p, err := s.Payments.FindByID(ctx, o.ID); {
	case err == nil:
		pay = p
	case !repos.IsNotFound(err):
		return nil, err
	}
	d := domain.NewOrderDetail(o, *client, items, cache, pay)
	return &d, nil
}

func (s *OrderService) FindAll(ctx context.Context) ([]domain.OrderDetail, error) {
	orders, err := s.Orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	cache := map[int64]domain.Product{}
	out := make([]domain.OrderDetail, 0, len(orders))
	for _, o := range orders {
		d, err := s.detail(ctx, o, cache)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

func (s *OrderService) find(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("order", id, err)
	}
	return o, nil
}

func (s *OrderService) FindByID(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, *o, map[int64]domain.Product{})
}

// ByClient lists a user's orders without their details.
func (s *OrderService) ByClient(ctx context.Context, userID int64) ([]domain.Order, error) {
	ok, err := s.Users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Resource: "user", ID: userID}
	}
	return s.Orders.ByClient(ctx, userID)
}

// Place creates a WAITING_PAYMENT order for clientID. Each line's price is
// taken from the product as it is now; repeated products are merged.
func (s *OrderService) Place(ctx context.Context, clientID int64, lines []OrderLine) (*domain.OrderDetail, error) {
	if len(lines) == 0 {
		return nil, domain.Invalid("an order needs at least one item")
	}
	qty := map[int64]int{}
	var productIDs []int64
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, domain.Invalid("quantity must be at least 1")
		}
		if _, ok := qty[l.ProductID]; !ok {
			productIDs = append(productIDs, l.ProductID)
		}
		qty[l.ProductID] += l.Quantity
	}
	if _, err := s.Users.FindByID(ctx, clientID); err != nil {
		return nil, notFound("user", clientID, err)
	}
	prices := map[int64]domain.Product{}
	for _, id := range productIDs {
		p, err := s.Prods.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		prices[id] = *p
	}

	o := domain.Order{Moment: domain.Now(), Status: domain.WaitingPayment, ClientID: clientID}
	if err := s.Orders.Save(ctx, &o); err != nil {
		return nil, writeErr("order", err)
	}
	for _, id := range productIDs {
		it := domain.OrderItem{OrderID: o.ID, ProductID: id, Quantity: qty[id], Price: prices[id].Price}
		if err := s.Items.Save(ctx, &it); err != nil {
			return nil, writeErr("order item", err)
		}
	}
	return s.detail(ctx, o, prices)
}

func (s *OrderService) SetStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.OrderDetail, error) {
	if !status.Valid() {
		return nil, domain.Invalid("Invalid OrderStatus code %d", status.Code())
	}
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.Orders.Save(ctx, o); err != nil {
		return nil, writeErr("order", err)
	}
	return s.detail(ctx, *o, map[int64]domain.Product{})
}

// Pay records the payment of a WAITING_PAYMENT order and marks it PAID.
func (s *OrderService) Pay(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.WaitingPayment {
		return nil, domain.Invalid("order %d is %s", id, o.Status)
	}
	ok, err := s.Payments.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, domain.Invalid("order %d already has a payment", id)
	}
	if err := s.Orders.Pay(ctx, &domain.Payment{OrderID: id, Moment: domain.Now()}); err != nil {
		return nil, writeErr("payment", err)
	}
	o.Status = domain.Paid
	return s.detail(ctx, *o, map[int64]domain.Product{})
}

// Delete removes the order together with its items and payment.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	ok, err := s.Orders.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "order", ID: id}
	}
	return deleteErr("order", id, s.Orders.DeleteByID(ctx, id))
}
