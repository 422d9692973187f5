package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/raj8888/Ecommerce-API/internal/config"
	"github.com/raj8888/Ecommerce-API/internal/database"
	"github.com/raj8888/Ecommerce-API/internal/handlers"
	"github.com/raj8888/Ecommerce-API/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureCategoryIndexes(db); err != nil {
		log.Printf("category index warning: %v", err)
	}
	if err := database.EnsureCartIndexes(db); err != nil {
		log.Printf("cart index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	auth := middleware.Auth(db, config.AppEnv.JWTSecret)
	adminOnly := middleware.RequireRoles("admin")

	user := r.Group("/user")
	{
		user.POST("/register", handlers.Register(db))
		user.POST("/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	}

	category := r.Group("/category")
	{
		category.POST("/create", auth, adminOnly, handlers.CreateCategory(db))
		category.GET("/all", handlers.GetAllCategories(db))
		category.GET("/:id", handlers.GetSingleCategory(db))
	}

	product := r.Group("/product")
	{
		product.POST("/create", auth, adminOnly, handlers.CreateProduct(db))
		product.GET("/all", handlers.GetAllProducts(db))
		product.GET("/category/:categoryId", handlers.GetProductsByCategory(db))
		product.GET("/:id", handlers.GetSingleProduct(db))
	}

	cart := r.Group("/cart")
	cart.Use(auth)
	{
		cart.POST("/add", handlers.AddToCart(db))
		cart.GET("/view", handlers.ViewCart(db))
		cart.PUT("/update", handlers.UpdateCartItem(db))
		cart.DELETE("/remove/:productId", handlers.RemoveItemFromCart(db))
	}

	order := r.Group("/order")
	order.Use(auth)
	{
		order.POST("/create", handlers.CreateOrder(db))
		order.GET("/history", handlers.GetOrderHistory(db))
		order.GET("/details/:id", handlers.GetOrderDetails(db))
	}

	r.Run(":" + config.AppEnv.Port)
}
