package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopapi/internal/domain"
	"shopapi/internal/repos"
	"shopapi/internal/services"
)

type svc struct {
	db     *sqlx.DB
	users  *services.UserService
	cats   *services.CategoryService
	prods  *services.ProductService
	orders *services.OrderService
}

func seeded(t *testing.T) svc {
	t.Helper()
	db, err := repos.OpenDB(repos.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repos.Seed(context.Background(), db))

	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	prods := services.NewProductService(prodRepo, orderRepo)
	return svc{
		db:     db,
		users:  services.NewUserService(userRepo),
		cats:   services.NewCategoryService(repos.NewCategoryRepo(db), prodRepo),
		prods:  prods,
		orders: services.NewOrderService(orderRepo, repos.NewOrderItemRepo(db), repos.NewPaymentRepo(db), userRepo, prods),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

func TestFindByIDMissingIsNotFound(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	var nf *services.NotFoundError

	_, err := s.users.FindByID(ctx, 99)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Resource not found. Id 99", err.Error())

	_, err = s.prods.FindByID(ctx, 99)
	assert.ErrorAs(t, err, &nf)
	_, err = s.cats.FindByID(ctx, 99)
	assert.ErrorAs(t, err, &nf)
	_, err = s.orders.FindByID(ctx, 99)
	assert.ErrorAs(t, err, &nf)
}

func TestUserInsertHashesPassword(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, err := s.users.Insert(ctx, domain.User{Name: "Bob Grey", Email: "bob@gmail.com", Phone: "955555555"}, "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("123456")))

	got, err := s.users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, *u, *got)

	_, err = s.users.Insert(ctx, domain.User{ID: 5, Name: "x", Email: "x@x.com"}, "123456")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	twin, err := s.users.Insert(ctx, domain.User{Name: "Maria Brown", Email: "maria@gmail.com", Phone: "988888888"}, "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(4), twin.ID)
}

func TestUserUpdateKeepsUnsetFields(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	before, err := s.users.FindByID(ctx, 1)
	require.NoError(t, err)

	patch := services.UserPatch{Name: ptr("Maria Silva")}
	first, err := s.users.Update(ctx, 1, patch)
	require.NoError(t, err)
	second, err := s.users.Update(ctx, 1, patch)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Maria Silva", second.Name)
	assert.Equal(t, before.Email, second.Email)
	assert.Equal(t, before.Phone, second.Phone)
	assert.Equal(t, before.PasswordHash, second.PasswordHash)

	_, err = s.users.Update(ctx, 99, patch)
	var nf *services.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUserDeleteWithOrdersIsRefused(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	err := s.users.Delete(ctx, 1)
	var dbe *services.DatabaseError
	require.ErrorAs(t, err, &dbe)
	assert.Equal(t, "user", dbe.Resource)

	_, err = s.users.FindByID(ctx, 1)
	require.NoError(t, err)
	orders, err := s.orders.ByClient(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestUserDeleteThenNotFound(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	u, err := s.users.Insert(ctx, domain.User{Name: "Tmp", Email: "tmp@x.com"}, "123456")
	require.NoError(t, err)

	require.NoError(t, s.users.Delete(ctx, u.ID))
	var nf *services.NotFoundError
	assert.ErrorAs(t, s.users.Delete(ctx, u.ID), &nf)
	_, err = s.users.FindByID(ctx, u.ID)
	assert.ErrorAs(t, err, &nf)
}

func TestOrderDetailForSeededOrder(t *testing.T) {
	s := seeded(t)
	d, err := s.orders.FindByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.Paid, d.OrderStatus)
	assert.Equal(t, "Maria Brown", d.Client.Name)
	require.Len(t, d.Items, 2)
	assert.Equal(t, "The Lord of the Rings", d.Items[0].Product.Name)
	assert.Equal(t, []domain.Category{{ID: 2, Name: "Books"}}, d.Items[0].Product.Categories)
	assert.True(t, d.Total.Equal(dec("1431")), d.Total.String())
	require.NotNil(t, d.Payment)
	assert.Equal(t, "2019-06-20T21:53:07Z", d.Payment.Moment.String())

	unpaid, err := s.orders.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, unpaid.Payment)
}

func TestOrderTotalIgnoresLaterPriceChanges(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	_, err := s.prods.Update(ctx, 1, services.ProductPatch{Price: ptr(dec("500"))})
	require.NoError(t, err)

	d, err := s.orders.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, d.Total.Equal(dec("1431")), d.Total.String())
	assert.True(t, d.Items[0].Product.Price.Equal(dec("500")))
	assert.True(t, d.Items[0].Price.Equal(dec("90.5")))
}

func TestPlaceOrderSnapshotsPricesAndMergesLines(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	d, err := s.orders.Place(ctx, 2, []services.OrderLine{
		{ProductID: 5, Quantity: 1},
		{ProductID: 1, Quantity: 1},
		{ProductID: 5, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WaitingPayment, d.OrderStatus)
	require.Len(t, d.Items, 2)
	assert.Equal(t, 1, d.Items[0].Quantity)
	assert.Equal(t, 3, d.Items[1].Quantity)
	assert.True(t, d.Total.Equal(dec("393.47")), d.Total.String())

	_, err = s.orders.Place(ctx, 2, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = s.orders.Place(ctx, 2, []services.OrderLine{{ProductID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	var nf *services.NotFoundError
	_, err = s.orders.Place(ctx, 77, []services.OrderLine{{ProductID: 1, Quantity: 1}})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Resource)
	_, err = s.orders.Place(ctx, 2, []services.OrderLine{{ProductID: 77, Quantity: 1}})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "product", nf.Resource)
}

func TestPayOrder(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	d, err := s.orders.Pay(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.Paid, d.OrderStatus)
	require.NotNil(t, d.Payment)
	assert.Equal(t, int64(2), d.Payment.OrderID)

	_, err = s.orders.Pay(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = s.orders.Pay(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSetStatus(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	d, err := s.orders.SetStatus(ctx, 1, domain.Shipped)
	require.NoError(t, err)
	assert.Equal(t, domain.Shipped, d.OrderStatus)

	_, err = s.orders.SetStatus(ctx, 1, domain.OrderStatus(12))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestOrderDeleteCascades(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	require.NoError(t, s.orders.Delete(ctx, 1))

	var nf *services.NotFoundError
	_, err := s.orders.FindByID(ctx, 1)
	assert.ErrorAs(t, err, &nf)
	assert.ErrorAs(t, s.orders.Delete(ctx, 1), &nf)

	// product 1 is now only referenced by nothing and can go
	require.NoError(t, s.prods.Delete(ctx, 1))
}

func TestProductDeleteReferencedIsRefused(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	err := s.prods.Delete(ctx, 3)
	var dbe *services.DatabaseError
	require.ErrorAs(t, err, &dbe)
	_, err = s.prods.FindByID(ctx, 3)
	require.NoError(t, err)

	orders, err := s.prods.Orders(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestProductInsertWithCategories(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	p, err := s.prods.Insert(ctx, domain.Product{
		Name:       "Kindle",
		Price:      dec("99.9"),
		Categories: []domain.Category{{ID: 1}, {ID: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Electronics"}, {ID: 2, Name: "Books"}}, p.Categories)

	_, err = s.prods.Insert(ctx, domain.Product{Name: "Bad", Price: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = s.prods.Insert(ctx, domain.Product{Name: "Orphan", Price: dec("1"), Categories: []domain.Category{{ID: 88}}})
	var dbe *services.DatabaseError
	assert.ErrorAs(t, err, &dbe)

	books, err := s.cats.Products(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestCategoryLifecycle(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	c, err := s.cats.Insert(ctx, domain.Category{Name: "Games"})
	require.NoError(t, err)
	renamed, err := s.cats.Update(ctx, c.ID, ptr("Video Games"))
	require.NoError(t, err)
	assert.Equal(t, "Video Games", renamed.Name)

	var dbe *services.DatabaseError
	assert.ErrorAs(t, s.cats.Delete(ctx, 2), &dbe)
	require.NoError(t, s.cats.Delete(ctx, c.ID))

	var nf *services.NotFoundError
	_, err = s.cats.Products(ctx, c.ID)
	assert.True(t, errors.As(err, &nf))
}
