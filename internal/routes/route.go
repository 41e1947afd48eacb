package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cinema/internal/container"
	"github.com/joshua-takyi/cinema/internal/handlers"
	"github.com/joshua-takyi/cinema/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.RedirectTrailingSlash = true
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health/", handlers.Health(container.HealthChecks()))

		api.POST("/auth/login/",
			middleware.LoginRateLimit(container.Redis, container.Config.LoginRateLimit, container.Config.LoginRateWindow, container.Logger),
			handlers.Login(container.UserService),
		)
	}

	showRoutes := api.Group("/shows")
	{
		showRoutes.GET("/", handlers.ListShows(container.ShowService))
		showRoutes.POST("/", handlers.CreateShow(container.ShowService))
		showRoutes.GET("/:id/", handlers.GetShow(container.ShowService))
		showRoutes.PUT("/:id/", handlers.UpdateShow(container.ShowService, false))
		showRoutes.PATCH("/:id/", handlers.UpdateShow(container.ShowService, true))
		showRoutes.DELETE("/:id/", handlers.DeleteShow(container.ShowService))
	}

	reservationRoutes := api.Group("/reservations")
	{
		reservationRoutes.GET("/", handlers.ListReservations(container.ReservationService))
		reservationRoutes.POST("/", handlers.CreateReservation(container.ReservationService))
		reservationRoutes.GET("/:id/", handlers.GetReservation(container.ReservationService))
		reservationRoutes.PUT("/:id/", handlers.UpdateReservation(container.ReservationService, false))
		reservationRoutes.PATCH("/:id/", handlers.UpdateReservation(container.ReservationService, true))
		reservationRoutes.DELETE("/:id/", handlers.DeleteReservation(container.ReservationService))
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Config.JWTSecret, container.Logger))

	protected.GET("/reservations/:id/events/", handlers.ListReservationEvents(container.EventLogger))

	catalogRoutes := protected.Group("/movie-catalog")
	{
		catalogRoutes.GET("/", handlers.ListCatalog(container.CatalogService))
		catalogRoutes.POST("/", handlers.CreateCatalogEntry(container.CatalogService))
		catalogRoutes.GET("/:id/", handlers.GetCatalogEntry(container.CatalogService))
		catalogRoutes.PUT("/:id/", handlers.UpdateCatalogEntry(container.CatalogService, false))
		catalogRoutes.PATCH("/:id/", handlers.UpdateCatalogEntry(container.CatalogService, true))
		catalogRoutes.DELETE("/:id/", handlers.DeleteCatalogEntry(container.CatalogService))
	}

	return r
}
