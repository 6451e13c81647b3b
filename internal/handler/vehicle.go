package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivebase/rental/internal/domain"
)

// createVehicleRequest is the POST /vehicles body.
type createVehicleRequest struct {
	Plate   string `json:"plate"`
	Make    string `json:"make,omitempty"`
	Model   string `json:"model,omitempty"`
	Type    string `json:"type"`
	Mileage int64  `json:"mileage,omitempty"`
}

// CreateVehicle handles POST /vehicles.
func (s *Server) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var body createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid JSON body: "+err.Error())
		return
	}

	created, err := s.vehicles.Create(r.Context(), domain.Vehicle{
		Plate:   body.Plate,
		Make:    body.Make,
		Model:   body.Model,
		Type:    body.Type,
		Mileage: body.Mileage,
		Status:  domain.VehicleAvailable,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": vehicles})
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	vehicle, err := s.vehicles.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}
