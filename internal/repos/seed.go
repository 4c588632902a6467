package repos

import (
	"context"

	"shopapi/internal/domain"
	applog "shopapi/internal/log"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo catalog, users and orders when tb_user is empty.
// Safe to run on every start; the rows land in one transaction or not at all.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tb_user`); err != nil {
		return wrap(err, "count", "tb_user")
	}
	if n > 0 {
		return nil
	}

	applog.Event("seed.start", map[string]any{"users": 2, "products": 5, "orders": 3})

	return inTx(ctx, db, func(q Querier) error {
		users := NewUserRepo(q)
		cats := NewCategoryRepo(q)
		prods := NewProductRepo(q)
		orders := NewOrderRepo(q)
		items := NewOrderItemRepo(q)
		payments := NewPaymentRepo(q)

		mkUser := func(name, email, phone, raw string) (*domain.User, error) {
			h, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			u := &domain.User{Name: name, Email: email, Phone: phone, PasswordHash: string(h)}
			return u, users.Save(ctx, u)
		}
		u1, err := mkUser("Maria Brown", "maria@gmail.com", "988888888", "123456")
		if err != nil {
			return err
		}
		u2, err := mkUser("Alex Green", "alex@gmail.com", "977777777", "123456")
		if err != nil {
			return err
		}

		electronics := &domain.Category{Name: "Electronics"}
		books := &domain.Category{Name: "Books"}
		computers := &domain.Category{Name: "Computers"}
		for _, c := range []*domain.Category{electronics, books, computers} {
			if err := cats.Save(ctx, c); err != nil {
				return err
			}
		}

		mkProduct := func(name, desc, price string, cs ...*domain.Category) *domain.Product {
			p := &domain.Product{Name: name, Description: desc, Price: decimal.RequireFromString(price)}
			for _, c := range cs {
				p.Categories = append(p.Categories, *c)
			}
			return p
		}
		p1 := mkProduct("The Lord of the Rings", "Lorem ipsum dolor sit amet, consectetur.", "90.5", books)
		p2 := mkProduct("Smart TV", "Nulla eu imperdiet purus. Maecenas ante.", "2190.0", electronics, computers)
		p3 := mkProduct("Macbook Pro", "Nam eleifend maximus tortor, at mollis.", "1250.0", computers)
		p4 := mkProduct("PC Gamer", "Donec aliquet odio ac rhoncus cursus.", "1200.0", computers)
		p5 := mkProduct("Rails for Dummies", "Cras fringilla convallis sem vel faucibus.", "100.99", books)
		for _, p := range []*domain.Product{p1, p2, p3, p4, p5} {
			if err := prods.Save(ctx, p); err != nil {
				return err
			}
		}

		o1 := &domain.Order{Moment: domain.MustInstant("2019-06-20T19:53:07Z"), Status: domain.Paid, ClientID: u1.ID}
		o2 := &domain.Order{Moment: domain.MustInstant("2019-07-21T03:42:10Z"), Status: domain.WaitingPayment, ClientID: u2.ID}
		o3 := &domain.Order{Moment: domain.MustInstant("2019-07-22T15:21:22Z"), Status: domain.WaitingPayment, ClientID: u1.ID}
		for _, o := range []*domain.Order{o1, o2, o3} {
			if err := orders.Save(ctx, o); err != nil {
				return err
			}
		}

		lines := []domain.OrderItem{
			{OrderID: o1.ID, ProductID: p1.ID, Quantity: 2, Price: p1.Price},
			{OrderID: o1.ID, ProductID: p3.ID, Quantity: 1, Price: p3.Price},
			{OrderID: o2.ID, ProductID: p3.ID, Quantity: 2, Price: p3.Price},
			{OrderID: o3.ID, ProductID: p5.ID, Quantity: 2, Price: p5.Price},
		}
		for i := range lines {
			if err := items.Save(ctx, &lines[i]); err != nil {
				return err
			}
		}

		return payments.Save(ctx, &domain.Payment{OrderID: o1.ID, Moment: domain.MustInstant("2019-06-20T21:53:07Z")})
	})
}
