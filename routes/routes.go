package routes

import (
	"net/http"
	"time"

	"ticketbharat/handlers"
	"ticketbharat/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/session", hb.Chat.StartSession)
		api.GET("/session/:sessionID", hb.Chat.GetSession)
		api.POST("/session/:sessionID/select", hb.Chat.Select)
		api.POST("/session/:sessionID/mode", hb.Chat.SwitchMode)
		api.POST("/session/:sessionID/question", hb.Chat.AskQuestion)
		api.POST("/session/:sessionID/payment", hb.Chat.CompletePayment)
		api.DELETE("/session/:sessionID", hb.Chat.EndSession)
	}
}

// RegisterCatalogRoutes registers the read-only catalog browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/states", hb.Catalog.ListStates)
		api.GET("/states/:state/cities", hb.Catalog.ListCities)
		api.GET("/events", hb.Catalog.ListEvents)
		api.GET("/events/:id", hb.Catalog.GetEvent)
	}
}

// RegisterDashboardRoutes registers the landing dashboard data endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/popular", hb.Dashboard.PopularShows)
		api.GET("/tickets-sold", hb.Dashboard.TicketsSold)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm TicketBharat",
			"health":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes sets up all endpoints and shared middleware concerns.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}
