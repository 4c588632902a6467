package domain

import "github.com/shopspring/decimal"

// OrderItemKey is the composite identity of an order line.
type OrderItemKey struct {
	OrderID   int64
	ProductID int64
}

// OrderItem is keyed by (order, product). Price is the product price at the
// time the order was placed and is not rewritten when the product changes.
type OrderItem struct {
	OrderID   int64           `db:"order_id" json:"-"`
	ProductID int64           `db:"product_id" json:"productId"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Price     decimal.Decimal `db:"price" json:"price"`
}

func (i OrderItem) Key() OrderItemKey {
	return OrderItemKey{OrderID: i.OrderID, ProductID: i.ProductID}
}

func (i OrderItem) Equal(o OrderItem) bool { return i.Key() == o.Key() }

func (i OrderItem) SubTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums price × quantity over the items. Order totals are always
// computed this way and never stored.
func Total(items []OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.SubTotal())
	}
	return sum
}
