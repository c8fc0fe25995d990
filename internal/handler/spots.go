package handler

import (
	"net/http"

	"github.com/osse101/UrbanPark_Go/internal/auth"
	"github.com/osse101/UrbanPark_Go/internal/inventory"
)

// HandleListSpots returns the current active-spot snapshot
// @Summary List active spots
// @Description Returns every active spot with its live availability
// @Tags spots
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/spots [get]
func HandleListSpots(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.CurrentSnapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListSpots, err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleGetSpot returns one spot. Administrators also see inactive spots.
// @Summary Get a spot
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} SpotResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/spots/{id} [get]
func HandleGetSpot(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spotID, ok := pathParam(w, r, ParamID)
		if !ok {
			return
		}
		// Anonymous readers are allowed and only see active spots
		principal, _ := auth.PrincipalFromContext(r.Context())

		spot, err := svc.GetSpot(r.Context(), principal, spotID)
		if err != nil {
			respondServiceError(w, r, OpGetSpot, err)
			return
		}
		respondJSON(w, http.StatusOK, SpotResponse{Spot: spot})
	}
}
