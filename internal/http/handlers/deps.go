package handlers

import (
	"shopapi/internal/repos"
	"shopapi/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	UserHandler     *UserHandler
	OrderHandler    *OrderHandler
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	HomeHandler     *HomeHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	itemRepo := repos.NewOrderItemRepo(db)
	payRepo := repos.NewPaymentRepo(db)

	userSvc := services.NewUserService(userRepo)
	catSvc := services.NewCategoryService(catRepo, prodRepo)
	prodSvc := services.NewProductService(prodRepo, orderRepo)
	orderSvc := services.NewOrderService(orderRepo, itemRepo, payRepo, userRepo, prodSvc)

	return &Deps{
		UserHandler:     &UserHandler{Users: userSvc, OrderSvc: orderSvc},
		OrderHandler:    &OrderHandler{Orders: orderSvc},
		ProductHandler:  &ProductHandler{Prods: prodSvc},
		CategoryHandler: &CategoryHandler{Cats: catSvc},
		HomeHandler:     &HomeHandler{Users: userSvc, Orders: orderSvc, Prods: prodSvc, Cats: catSvc},
	}
}
