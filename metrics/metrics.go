package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hotel_booking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and route.",
		},
		[]string{"method", "route"},
	)

	bookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "bookings_created_total",
		Help:      "Bookings successfully created.",
	})

	bookingsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "bookings_cancelled_total",
		Help:      "Bookings soft-cancelled.",
	})

	bookingsRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "bookings_removed_total",
		Help:      "Bookings permanently removed.",
	})

	bookingConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hotel_booking",
		Name:      "booking_conflicts_total",
		Help:      "Booking attempts rejected because the room reservation lost a race or the room was taken.",
	})
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			bookingsCreated,
			bookingsCancelled,
			bookingsRemoved,
			bookingConflicts,
		)
	})
}

func IncHTTP(method, route string) {
	httpRequests.WithLabelValues(method, route).Inc()
}

func IncBookingCreated()   { bookingsCreated.Inc() }
func IncBookingCancelled() { bookingsCancelled.Inc() }
func IncBookingRemoved()   { bookingsRemoved.Inc() }
func IncBookingConflict()  { bookingConflicts.Inc() }
