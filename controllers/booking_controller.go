package controllers

import (
	"net/http"

	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	CustomerID uint   `json:"customerId"`
	RoomID     uint   `json:"roomId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

// Create handles POST /api/bookings.
func (bc *BookingController) Create(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing booking data"})
		return
	}

	booking, err := bc.Bookings.Create(payload.CustomerID, payload.RoomID, payload.CheckIn, payload.CheckOut)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking successful", "booking": booking})
}

// ListForCustomer handles GET /api/bookings/:customerId.
func (bc *BookingController) ListForCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	bookings, err := bc.Bookings.ListForCustomer(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
