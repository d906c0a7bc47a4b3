package routes

import (
	"net/http"
	"time"

	"github.com/Omarrio321/Aran-Repairs/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", handlers.GetCategoriesHandler)
		api.GET("/brands", handlers.GetBrandsHandler)
		api.GET("/models", handlers.GetModelsHandler)
		api.GET("/repairs", handlers.GetRepairsHandler)
		api.GET("/refurbished", handlers.GetRefurbishedHandler)
		api.GET("/refurbished/:id", handlers.GetRefurbishedByIDHandler)
		api.GET("/accessories", handlers.GetAccessoriesHandler)
		api.GET("/accessories/:id", handlers.GetAccessoryByIDHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the repair wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/slots", hb.Booking.GetSlots)
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
	}
}

// RegisterCartRoutes sets up the shopping cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.GET("/:cartID/summary", hb.Cart.GetSummary)
		cartGroup.POST("/:cartID/items", hb.Cart.AddItem)
		cartGroup.DELETE("/:cartID/items/:itemID", hb.Cart.RemoveItem)
		cartGroup.DELETE("/:cartID", hb.Cart.ClearCart)
	}
}

// RegisterAIRoutes registers the smart-diagnosis endpoint.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.POST("/diagnose", hb.Diagnosis.Diagnose)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Aran Repairs"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r)
	RegisterBookingRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
