package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-booking/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// statusFor maps domain errors to HTTP statuses: bad input and unavailable or
// duplicate resources are the client's fault, unresolved ids are 404,
// everything else is a server error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrDuplicateRoom),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrInvoiceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status with a human-readable message.
// Internal errors are logged and replaced with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		msg = "Server error"
	}
	c.JSON(status, gin.H{"message": msg})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
