package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gym-backend/controllers"
	"gym-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers. Read endpoints are public; every
// mutation requires an admin bearer token.
func SetupRouter(
	rc *controllers.ReservationController,
	sc *controllers.SalleController,
	cc *controllers.ClientController,
	dc *controllers.DashboardController,
	ac *controllers.AuthController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRequired := middleware.RequireAuth(jwtSecret)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		salles := api.Group("/salles")
		{
			salles.GET("", sc.GetSalles)
			salles.GET("/availability", sc.GetAvailableSalles)
			salles.GET("/:id", sc.GetSalle)
			salles.POST("", authRequired, sc.CreateSalle)
			salles.PUT("/:id", authRequired, sc.UpdateSalle)
			salles.DELETE("/:id", authRequired, sc.DeleteSalle)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", cc.GetClients)
			clients.GET("/:id", cc.GetClient)
			clients.POST("", authRequired, cc.CreateClient)
			clients.PUT("/:id", authRequired, cc.UpdateClient)
			clients.DELETE("/:id", authRequired, cc.DeleteClient)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.GetReservations)
			reservations.GET("/between", rc.GetReservationsBetween)
			reservations.GET("/client/:id", rc.GetReservationsByClient)
			reservations.GET("/salle/:id", rc.GetReservationsBySalle)
			reservations.GET("/status/:status", rc.GetReservationsByStatus)
			reservations.GET("/:id", rc.GetReservation)

			reservations.POST("", authRequired, rc.CreateReservation)
			reservations.PUT("/:id", authRequired, rc.UpdateReservation)
			reservations.POST("/:id/confirm", authRequired, rc.ConfirmReservation)
			reservations.POST("/:id/cancel", authRequired, rc.CancelReservation)
			reservations.POST("/:id/complete", authRequired, rc.CompleteReservation)
			reservations.DELETE("/:id", authRequired, rc.DeleteReservation)
		}

		api.GET("/dashboard", dc.GetStats)
	}

	return r
}
