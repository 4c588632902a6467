package domain

import "github.com/shopspring/decimal"

type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	Phone        string `db:"phone" json:"phone"`
	PasswordHash string `db:"password_hash" json:"-"`
}

func (u User) Equal(o User) bool { return u.ID == o.ID }

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

func (c Category) Equal(o Category) bool { return c.ID == o.ID }

// Product owns the product/category join; Categories is filled by an
// explicit lookup, never lazily.
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImgURL      string          `db:"img_url" json:"imgUrl"`
	Categories  []Category      `db:"-" json:"categories"`
}

func (p Product) Equal(o Product) bool { return p.ID == o.ID }

// CategoryIDs returns the ids of the linked categories in order.
func (p Product) CategoryIDs() []int64 {
	ids := make([]int64, 0, len(p.Categories))
	for _, c := range p.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// Order references its client by id only; items, payment and client details
// are loaded on request (see OrderDetail).
type Order struct {
	ID       int64       `db:"id" json:"id"`
	Moment   Instant     `db:"moment" json:"moment"`
	Status   OrderStatus `db:"order_status" json:"orderStatus"`
	ClientID int64       `db:"client_id" json:"clientId"`
}

func (o Order) Equal(other Order) bool { return o.ID == other.ID }

// Payment shares its order's id and is deleted with it.
type Payment struct {
	OrderID int64   `db:"order_id" json:"id"`
	Moment  Instant `db:"moment" json:"moment"`
}

func (p Payment) Equal(o Payment) bool { return p.OrderID == o.OrderID }
