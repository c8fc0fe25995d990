package handler

import (
	"context"
	"net/http"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/inventory"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// HandleCreateSpot adds a spot with every unit available
// @Summary Create a spot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSpotRequest true "Spot details"
// @Success 201 {object} SpotResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/spots [post]
func HandleCreateSpot(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}

		var req CreateSpotRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpCreateSpot); err != nil {
			return
		}

		spot, err := svc.CreateSpot(r.Context(), principal, domain.NewSpotParams{
			Name:          req.Name,
			Latitude:      *req.Latitude,
			Longitude:     *req.Longitude,
			TotalCapacity: *req.TotalCapacity,
		})
		if err != nil {
			respondServiceError(w, r, OpCreateSpot, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSpotCreated, "spot_id", spot.ID, "principal_id", principal.ID)
		respondJSON(w, http.StatusCreated, SpotResponse{Spot: spot})
	}
}

// HandleUpdateSpot replaces a spot's name and coordinates
// @Summary Update spot details
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body UpdateSpotRequest true "Display fields"
// @Success 200 {object} SpotResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/spots/{id} [patch]
func HandleUpdateSpot(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		spotID, ok := pathParam(w, r, ParamID)
		if !ok {
			return
		}

		var req UpdateSpotRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUpdateSpot); err != nil {
			return
		}

		spot, err := svc.UpdateSpot(r.Context(), principal, spotID, domain.SpotDetails{
			Name:      req.Name,
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		})
		respondSpotChange(w, r, OpUpdateSpot, principal, spot, err)
	}
}

// HandleUpdateCapacity sets a spot's total capacity, keeping outstanding bookings
// @Summary Update spot capacity
// @Description Fails with 400 when the new capacity is below the units currently booked
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body UpdateCapacityRequest true "New capacity"
// @Success 200 {object} SpotResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/spots/{id}/capacity [put]
func HandleUpdateCapacity(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		spotID, ok := pathParam(w, r, ParamID)
		if !ok {
			return
		}

		var req UpdateCapacityRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpUpdateCapacity); err != nil {
			return
		}

		spot, err := svc.UpdateCapacity(r.Context(), principal, spotID, *req.TotalCapacity)
		respondSpotChange(w, r, OpUpdateCapacity, principal, spot, err)
	}
}

// HandleDeactivate hides a spot from bookings and snapshots
// @Summary Deactivate a spot
// @Description Existing bookings stay valid and can still be cancelled
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} SpotResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/spots/{id}/deactivate [post]
func HandleDeactivate(svc inventory.Service) http.HandlerFunc {
	return handleStatusChange(OpDeactivate, svc.Deactivate)
}

// HandleActivate makes a spot bookable again
// @Summary Reactivate a spot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} SpotResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/spots/{id}/activate [post]
func HandleActivate(svc inventory.Service) http.HandlerFunc {
	return handleStatusChange(OpActivate, svc.Reactivate)
}

func handleStatusChange(op string, change func(context.Context, domain.Principal, string) (*domain.Spot, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, ok := requirePrincipal(w, r)
		if !ok {
			return
		}
		spotID, ok := pathParam(w, r, ParamID)
		if !ok {
			return
		}

		spot, err := change(r.Context(), principal, spotID)
		respondSpotChange(w, r, op, principal, spot, err)
	}
}

func respondSpotChange(w http.ResponseWriter, r *http.Request, op string, principal domain.Principal, spot *domain.Spot, err error) {
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgSpotChanged,
		"op", op,
		"spot_id", spot.ID,
		"status", spot.Status,
		"principal_id", principal.ID)
	respondJSON(w, http.StatusOK, SpotResponse{Spot: spot})
}
