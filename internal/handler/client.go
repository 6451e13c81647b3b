package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drivebase/rental/internal/domain"
)

// createClientRequest is the POST /clients body.
type createClientRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	LicenceNo string `json:"licence_no,omitempty"`
}

// CreateClient handles POST /clients.
func (s *Server) CreateClient(w http.ResponseWriter, r *http.Request) {
	var body createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid JSON body: "+err.Error())
		return
	}

	created, err := s.clients.Create(r.Context(), domain.Client{
		Name:      body.Name,
		Email:     body.Email,
		Phone:     body.Phone,
		LicenceNo: body.LicenceNo,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetClient handles GET /clients/{id}.
func (s *Server) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	client, err := s.clients.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, client)
}
