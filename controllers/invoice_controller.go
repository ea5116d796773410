package controllers

import (
	"net/http"

	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Invoices: invoices}
}

// ForCustomer handles GET /api/invoices/customer/:customerId — every booking
// of the customer rendered as an invoice line.
func (ic *InvoiceController) ForCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customerId")
	if !ok {
		return
	}
	view, err := ic.Invoices.CustomerInvoice(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ForBooking handles GET /api/invoices/:bookingId — the derived invoice for a
// single booking.
func (ic *InvoiceController) ForBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "bookingId")
	if !ok {
		return
	}
	view, err := ic.Invoices.BookingInvoice(bookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
