package http

import (
	"restopos/internal/controller/http/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	auth      handlers.AuthHandler
	user      handlers.UserHandler
	category  handlers.CategoryHandler
	product   handlers.ProductHandler
	table     handlers.TableHandler
	order     handlers.OrderHandler
	orderItem handlers.OrderItemHandler
}

func NewRouter(
	auth handlers.AuthHandler,
	user handlers.UserHandler,
	category handlers.CategoryHandler,
	product handlers.ProductHandler,
	table handlers.TableHandler,
	order handlers.OrderHandler,
	orderItem handlers.OrderItemHandler,
) *Router {
	return &Router{
		auth:      auth,
		user:      user,
		category:  category,
		product:   product,
		table:     table,
		order:     order,
		orderItem: orderItem,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/auth/register", r.auth.Register)
	engine.POST("/auth/login", r.auth.Login)

	authed := engine.Group("/", r.auth.Middleware())

	authed.POST("/auth/logout", r.auth.Logout)
	authed.GET("/auth/me", r.auth.Me)

	authed.GET("/users", r.user.List)
	authed.GET("/users/:user_id", r.user.Get)
	authed.PATCH("/users/:user_id", r.user.Update)
	authed.DELETE("/users/:user_id", r.user.Delete)

	authed.POST("/categories", r.category.Create)
	authed.GET("/categories", r.category.List)
	authed.GET("/categories/:category_id", r.category.Get)
	authed.PATCH("/categories/:category_id", r.category.Update)
	authed.DELETE("/categories/:category_id", r.category.Delete)

	authed.POST("/products", r.product.Create)
	authed.GET("/products", r.product.List)
	authed.GET("/products/:product_id", r.product.Get)
	authed.PATCH("/products/:product_id", r.product.Update)
	authed.DELETE("/products/:product_id", r.product.Delete)

	authed.POST("/tables", r.table.Create)
	authed.GET("/tables", r.table.List)
	authed.GET("/tables/:table_id", r.table.Get)
	authed.PATCH("/tables/:table_id", r.table.Update)
	authed.DELETE("/tables/:table_id", r.table.Delete)

	authed.POST("/orders", r.order.Create)
	authed.GET("/orders", r.order.Filter)
	authed.GET("/orders/:order_id", r.order.Get)
	authed.PATCH("/orders/:order_id", r.order.UpdateNotes)
	authed.PATCH("/orders/:order_id/status", r.order.UpdateStatus)
	authed.POST("/orders/:order_id/items", r.order.AddItems)
	authed.DELETE("/orders/:order_id", r.order.Delete)

	authed.GET("/order-items/:item_id", r.orderItem.Get)
	authed.PATCH("/order-items/:item_id", r.orderItem.Update)
	authed.DELETE("/order-items/:item_id", r.orderItem.Delete)
}
