package routes

import (
	"github.com/Nikhilguptaklu/grocery-qm-sub000/configs"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/controllers"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/middlewares"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/repository"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/services"
	"github.com/Nikhilguptaklu/grocery-qm-sub000/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	restOrderRepo := repository.NewRestaurantOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(db, cfg)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	couponSvc := services.NewCouponService(couponRepo)
	checkoutSvc := services.NewCheckoutService(db, cartRepo, couponSvc, couponRepo, settingsRepo, orderRepo, restOrderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restOrderRepo, catalogRepo)

	// WS tracking hub — ต่อเข้ากับ transition ผ่าน Notifier
	hub := ws.NewTrackHub(orderSvc)
	orderSvc.Notifier = hub
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, orderRepo)
	couponCtrl := controllers.NewCouponController(couponSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, couponRepo, settingsRepo)
	restCtrl := controllers.NewRestaurantController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth, authCtrl.Me)

	// Catalog (public)
	r.GET("/products", catalogCtrl.Products)
	r.GET("/restaurants", catalogCtrl.Restaurants)
	r.GET("/restaurants/:id", catalogCtrl.RestaurantDetail)

	// Cart
	cart := r.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Checkout
	checkout := r.Group("/checkout", auth)
	{
		checkout.GET("/quote", checkoutCtrl.Quote)
		checkout.GET("/addresses", checkoutCtrl.PreviousAddresses)
		checkout.POST("", checkoutCtrl.PlaceOrders)
	}
	r.POST("/coupons/validate", auth, couponCtrl.Validate)

	// Orders (user)
	u := r.Group("/", auth)
	{
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.GET("/restaurant-orders/:id", orderCtrl.RestaurantDetail)
	}

	// Order tracking (ws)
	r.GET("/ws/orders/:kind/:id", auth, hub.HandleWebSocket)

	// Partner Restaurant (owner/admin)
	partnerRest := r.Group("/partner/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"))
	{
		partnerRest.GET("/orders", restCtrl.Orders) // ?restaurantId=
		partnerRest.PATCH("/orders/:id/accept", restCtrl.Accept)
		partnerRest.PATCH("/orders/:id/prepare", restCtrl.Prepare)
		partnerRest.PATCH("/orders/:id/ready", restCtrl.Ready)
		partnerRest.PATCH("/orders/:id/handoff", restCtrl.Handoff)
		partnerRest.PATCH("/orders/:id/complete", restCtrl.Complete)
		partnerRest.PATCH("/orders/:id/cancel", restCtrl.Cancel)
	}

	// Partner Delivery (delivery/admin)
	partnerDelivery := r.Group("/partner/delivery", middlewares.AuthMiddleware(cfg.JWTSecret, "delivery", "admin"))
	{
		partnerDelivery.GET("/orders", deliveryCtrl.Orders)
		partnerDelivery.PATCH("/orders/:id/pickup", deliveryCtrl.PickUp)
		partnerDelivery.PATCH("/orders/:id/complete", deliveryCtrl.Complete)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/orders", adminCtrl.Orders)
		admin.PATCH("/orders/:id/confirm", adminCtrl.ConfirmOrder)
		admin.PATCH("/orders/:id/cancel", adminCtrl.CancelOrder)
		admin.PATCH("/orders/:id/assign", adminCtrl.AssignDelivery)

		admin.GET("/coupons", adminCtrl.Coupons)
		admin.POST("/coupons", adminCtrl.CreateCoupon)
		admin.PATCH("/coupons/:id", adminCtrl.UpdateCoupon)
		admin.DELETE("/coupons/:id", adminCtrl.DeleteCoupon)

		admin.GET("/delivery-settings", adminCtrl.DeliverySettings)
		admin.POST("/delivery-settings", adminCtrl.CreateDeliverySettings)
	}
}
