package handlers

// HandlerBundle groups the wired handlers for route registration.
type HandlerBundle struct {
	Booking   *BookingHandler
	Cart      *CartHandler
	Diagnosis *DiagnosisHandler
}
