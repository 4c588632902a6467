package domain

import "github.com/shopspring/decimal"

type OrderItemDetail struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	SubTotal decimal.Decimal `json:"subTotal"`
	Product  Product         `json:"product"`
}

// OrderDetail is the serialized shape of an order: the client is embedded
// (and carries no orders back), items carry their product but no order.
type OrderDetail struct {
	ID          int64             `json:"id"`
	Moment      Instant           `json:"moment"`
	OrderStatus OrderStatus       `json:"orderStatus"`
	Client      User              `json:"client"`
	Items       []OrderItemDetail `json:"items"`
	Payment     *Payment          `json:"payment"`
	Total       decimal.Decimal   `json:"total"`
}

// NewOrderDetail assembles a detail view. products must hold every product
// referenced by items.
func NewOrderDetail(o Order, client User, items []OrderItem, products map[int64]Product, payment *Payment) OrderDetail {
	d := OrderDetail{
		ID:          o.ID,
		Moment:      o.Moment,
		OrderStatus: o.Status,
		Client:      client,
		Items:       make([]OrderItemDetail, 0, len(items)),
		Payment:     payment,
		Total:       Total(items),
	}
	for _, it := range items {
		d.Items = append(d.Items, OrderItemDetail{
			Quantity: it.Quantity,
			Price:    it.Price,
			SubTotal: it.SubTotal(),
			Product:  products[it.ProductID],
		})
	}
	return d
}
