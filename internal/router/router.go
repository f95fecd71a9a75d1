package router

import (
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/config"
	publichandlers "github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/http/handlers/public"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/logger"
	"github.com/RoieHarkavi/Jenkins-Project-Jewelry-Store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes the HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", publicHandler.Welcome)
	r.GET("/health", publicHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:product_id", publicHandler.GetProduct)
		api.GET("/categories", publicHandler.GetCategories)

		api.GET("/cart", publicHandler.GetCart)
		cart := api.Group("/cart/:session_id")
		{
			cart.POST("/add", publicHandler.AddToCart)
			cart.PUT("/item/:item_id", publicHandler.UpdateCartItem)
			cart.DELETE("/item/:item_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}
	}

	return r
}
