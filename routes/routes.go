package routes

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
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

// SetupRouter wires the controllers into the gin engine. adminKey gates the
// /api/admin group when non-empty; an empty key leaves the group open.
func SetupRouter(
	auc *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	ic *controllers.InvoiceController,
	ad *controllers.AdminController,
	adminKey string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	if rps, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")), 64); err == nil && rps > 0 {
		burst, _ := strconv.Atoi(strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")))
		r.Use(middleware.RateLimit(rps, burst))
	}

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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Admin-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", auc.Register)
			auth.POST("/login", auc.Login)
			auth.POST("/admin/login", auc.AdminLogin)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.ListAvailable)
			rooms.GET("/:id", rc.GetByID)
			rooms.POST("", rc.Create)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.Create)
			bookings.GET("/:customerId", bc.ListForCustomer)
		}

		invoices := api.Group("/invoices")
		{
			// /customer must stay registered before the :bookingId param route
			invoices.GET("/customer/:customerId", ic.ForCustomer)
			invoices.GET("/:bookingId", ic.ForBooking)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminToken(adminKey))
		{
			admin.GET("/rooms", ad.ListRooms)
			admin.POST("/rooms", ad.CreateRoom)
			admin.DELETE("/rooms/:id", ad.DeleteRoom)

			admin.GET("/bookings", ad.ListBookings)
			admin.DELETE("/bookings/:id", ad.CancelBooking)
			admin.DELETE("/bookings/:id/remove", ad.RemoveBooking)

			admin.GET("/invoices", ad.ListInvoices)
			admin.GET("/invoices/:id", ad.GetInvoice)
			admin.POST("/invoices", ad.CreateInvoice)
		}
	}

	return r
}
