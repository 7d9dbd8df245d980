package routes

import (
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/controllers"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/middlewares"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/services"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/session"
	"github.com/LakshyaBagani/CAFE-CHAIN-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	JWTSecret string
	Sessions  *session.Manager
	Backend   *services.SessionBackend

	Auth      *controllers.AuthController
	Session   *controllers.SessionController
	Cafes     *controllers.CafeController
	Menus     *controllers.MenuController
	Orders    *controllers.OrderController
	Wallet    *controllers.WalletController
	MealPlans *controllers.MealPlanController
	Admin     *controllers.AdminController

	OrderHub *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())
	r.Use(middlewares.SessionMiddleware(d.Sessions))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(d.JWTSecret, d.Backend, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/signup", d.Auth.Signup)
		a.POST("/login", d.Auth.Login)
		a.POST("/logout", d.Auth.Logout)
		a.GET("/session", d.Auth.Session)
		a.GET("/verify", d.Auth.Verify)
	}

	// Auth (protected)
	aAuth := a.Group("", authed())
	{
		aAuth.GET("/me", d.Auth.Me)
		aAuth.PATCH("/me", d.Auth.UpdateMe)
	}

	// Cafes (public)
	r.GET("/cafes", d.Cafes.List)
	r.GET("/cafes/:id", d.Cafes.Detail)
	r.GET("/cafes/:id/menu", d.Cafes.Menu)

	// Device session: cart and location state
	s := r.Group("/session")
	{
		s.GET("/cart", d.Session.GetCart)
		s.POST("/cart/items", d.Session.AddItem)
		s.PATCH("/cart/items/:id", d.Session.UpdateQuantity)
		s.DELETE("/cart/items/:id", d.Session.RemoveItem)
		s.DELETE("/cart", d.Session.ClearCart)
		s.PUT("/cart/restaurant", d.Session.SetRestaurant)
		s.GET("/location", d.Session.GetLocation)
		s.PUT("/location", d.Session.SetLocation)
	}

	// Orders (user)
	u := r.Group("/", authed())
	{
		u.POST("/orders", d.Orders.Checkout)
		u.GET("/orders", d.Orders.ListForMe)
		u.GET("/orders/:id", d.Orders.Detail)

		u.GET("/wallet", d.Wallet.Get)
		u.POST("/wallet/topup", d.Wallet.TopUp)
		u.GET("/wallet/transactions", d.Wallet.Transactions)

		u.POST("/meal-plans", d.MealPlans.Create)
		u.GET("/meal-plans", d.MealPlans.List)
		u.GET("/meal-plans/:id", d.MealPlans.Detail)
		u.PATCH("/meal-plans/:id", d.MealPlans.Update)
		u.DELETE("/meal-plans/:id", d.MealPlans.Delete)
	}

	// Live order status
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(d.JWTSecret), d.OrderHub.HandleWebSocket)

	// Admin (admin only)
	admin := r.Group("/admin", authed("admin"))
	{
		admin.GET("/dashboard", d.Admin.Dashboard)
		admin.GET("/users", d.Admin.UserList)
		admin.GET("/orders", d.Admin.OrderList)
		admin.PATCH("/orders/:id/status", d.Admin.AdvanceOrder)

		admin.POST("/cafes", d.Cafes.Create)
		admin.PATCH("/cafes/:id", d.Cafes.Update)
		admin.DELETE("/cafes/:id", d.Cafes.Delete)

		admin.POST("/menus", d.Menus.Create)
		admin.PATCH("/menus/:id", d.Menus.Update)
		admin.DELETE("/menus/:id", d.Menus.Delete)
	}
}
