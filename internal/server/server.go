package server

import (
	"fmt"
	"os"

	"shopsphere-be/config"
	"shopsphere-be/internal/handlers"
	"shopsphere-be/internal/middleware"
	"shopsphere-be/internal/payment"
	"shopsphere-be/internal/repositories"
	"shopsphere-be/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	xenditClient := config.InitXenditClient(config.LoadXenditConfig())
	gateway := payment.NewXenditGateway(xenditClient)

	r := gin.Default()
	r.Use(middleware.RequestLogger())
	r.Use(cors.Default())

	setupRoutes(r, db, gateway)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, gateway payment.Gateway) {
	couponRepo := repositories.NewCouponRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	productRepo := repositories.NewProductRepository(db)
	userRepo := repositories.NewUserRepository(db)

	couponHandler := handlers.NewCouponHandler(services.NewCouponService(couponRepo))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(orderRepo, cartRepo, couponRepo), gateway)
	cartHandler := handlers.NewCartHandler(services.NewCartService(cartRepo, productRepo, userRepo))
	productHandler := handlers.NewProductHandler(services.NewProductService(productRepo))
	authHandler := handlers.NewAuthHandler(userRepo)

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/public/coupons", couponHandler.GetCoupons)
		api.GET("/public/products", productHandler.GetProducts)
	}

	public := r.Group("/api/public")
	public.Use(middleware.JWTAuthMiddleware())
	{
		public.POST("/users/:emailId/carts/:cartId/payments/:paymentMethod/order", orderHandler.PlaceOrder)
		public.GET("/users/:emailId/orders/:orderId", orderHandler.GetOrder)
		public.GET("/users/:emailId/orders", orderHandler.GetOrdersByUser)
		public.POST("/users/:emailId/orders/:orderId/payment-link", orderHandler.CreatePaymentLink)
		public.GET("/orders/:orderId/qr", orderHandler.GenerateOrderQR)

		public.POST("/carts/products/:productId/quantity/:quantity", cartHandler.AddProductToCart)
		public.GET("/carts", cartHandler.GetCart)
		public.DELETE("/carts/:cartId/products/:productId", cartHandler.DeleteProductFromCart)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("/coupon", couponHandler.CreateCoupon)
		admin.PUT("/coupons/:couponId", couponHandler.UpdateCoupon)
		admin.DELETE("/coupons/:couponId", couponHandler.DeleteCoupon)
		admin.GET("/coupons/:couponId/orders", orderHandler.GetOrdersByCoupon)

		admin.GET("/orders", orderHandler.GetAllOrders)
		admin.PUT("/users/:emailId/orders/:orderId/orderStatus/:orderStatus", orderHandler.UpdateOrderStatus)

		admin.POST("/products", productHandler.CreateProduct)
	}
}
