package handler

import (
	"net/http"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/inventory"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// HandleBook takes one unit at a spot for the caller
// @Summary Book a spot
// @Description Atomically takes one available unit at an active spot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookRequest true "Spot to book"
// @Success 201 {object} BookResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/bookings [post]
func HandleBook(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req BookRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpBook); err != nil {
			return
		}

		bookingID, err := svc.Book(r.Context(), principal, req.SpotID)
		if err != nil {
			respondServiceError(w, r, OpBook, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgBookingCreated,
			"booking_id", bookingID,
			"spot_id", req.SpotID,
			"principal_id", principal.ID)
		respondJSON(w, http.StatusCreated, BookResponse{BookingID: bookingID})
	}
}

// HandleListBookings returns the caller's bookings, newest first
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BookingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/bookings [get]
func HandleListBookings(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		bookings, err := svc.ListBookings(r.Context(), principal)
		if err != nil {
			respondServiceError(w, r, OpListBookings, err)
			return
		}
		if bookings == nil {
			bookings = []domain.Booking{}
		}
		respondJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings})
	}
}

// HandleCancelBooking releases one of the caller's bookings
// @Summary Cancel a booking
// @Description Removes the booking and returns its unit. Bookings owned by someone else are reported as not found.
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/bookings/{id} [delete]
func HandleCancelBooking(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		bookingID, ok := pathParam(w, r, ParamID)
		if !ok {
			return
		}

		if err := svc.Cancel(r.Context(), principal, bookingID); err != nil {
			respondServiceError(w, r, OpCancel, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgBookingCancelled,
			"booking_id", bookingID,
			"principal_id", principal.ID)
		w.WriteHeader(http.StatusNoContent)
	}
}
