package routes

import (
	"carbooking/internal/handlers"
	"carbooking/pkg/websocket"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Cars     *handlers.CarHandler
	Domains  *handlers.DomainHandler
	Bookings *handlers.BookingHandler
	PayPal   *handlers.PayPalHandler
	Themes   *handlers.ThemeHandler
	Routes   *handlers.RouteHandler
	Health   *handlers.HealthHandler
	// LiveFeed may be nil when the realtime feed is disabled.
	LiveFeed *websocket.Handler
}

// SetupRoutes registers the public API under /api and the admin tree under
// /admin. Access to /admin is decided by the gate middleware on the engine.
func SetupRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	SetupCarRoutes(api, h.Cars)
	SetupDomainRoutes(api, h.Domains)
	SetupBookingRoutes(api, h.Bookings)
	SetupPayPalRoutes(api, h.PayPal)
	SetupThemeRoutes(api, h.Themes)

	api.GET("/routes/estimate", h.Routes.EstimateRoute)

	admin := r.Group("/admin")
	{
		admin.GET("/bookings", h.Bookings.ListBookings)
		admin.POST("/cars/seed", h.Cars.SeedCars)
		if h.LiveFeed != nil {
			admin.GET("/ws", h.LiveFeed.ServeWS)
		}
	}
}

func SetupCarRoutes(r *gin.RouterGroup, h *handlers.CarHandler) {
	cars := r.Group("/cars")
	{
		cars.GET("", h.ListCars)
		cars.POST("", h.CreateCar)
		cars.POST("/seed", h.SeedCars)
		cars.GET("/:id", h.GetCar)
		cars.PUT("/:id", h.UpdateCar)
		cars.DELETE("/:id", h.DeleteCar)
	}
}

func SetupDomainRoutes(r *gin.RouterGroup, h *handlers.DomainHandler) {
	domains := r.Group("/domains")
	{
		domains.GET("", h.ListDomains)
		domains.POST("", h.CreateDomain)
		domains.GET("/lookup", h.LookupDomain)
		domains.GET("/:id", h.GetDomain)
		domains.PUT("/:id", h.UpdateDomain)
		domains.DELETE("/:id", h.DeleteDomain)
	}
}

func SetupBookingRoutes(r *gin.RouterGroup, h *handlers.BookingHandler) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:reference", h.GetBooking)
		bookings.PATCH("/:reference", h.CancelBooking)
	}
}

func SetupPayPalRoutes(r *gin.RouterGroup, h *handlers.PayPalHandler) {
	paypal := r.Group("/paypal")
	{
		paypal.POST("/create-order", h.CreateOrder)
		paypal.POST("/capture-order", h.CaptureOrder)
	}
}

func SetupThemeRoutes(r *gin.RouterGroup, h *handlers.ThemeHandler) {
	themes := r.Group("/themes")
	{
		themes.GET("", h.ListThemes)
		themes.GET("/active", h.GetActiveTheme)
		themes.GET("/:id", h.GetTheme)
		themes.PUT("/:id", h.SetActiveTheme)
	}
}
