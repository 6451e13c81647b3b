package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/service"
)

// createBookingRequest is the POST /bookings body. Dates are calendar days
// in "2006-01-02" form; the range they describe is half-open, so end_date is
// the day the vehicle comes back and is itself bookable by the next client.
type createBookingRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	ClientID  uuid.UUID `json:"client_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Pickup    string    `json:"pickup,omitempty"`
	Dropoff   string    `json:"dropoff,omitempty"`
	Notes     string    `json:"notes,omitempty"`

	Payment *paymentRequest `json:"payment,omitempty"`
}

type paymentRequest struct {
	Method string `json:"method"`
}

type completeBookingRequest struct {
	Mileage int64  `json:"mileage"`
	Notes   string `json:"notes,omitempty"`
}

// bookingResponse is a booking plus any post-commit warnings. Warnings never
// accompany an error status: the booking they ride on is committed.
type bookingResponse struct {
	domain.Booking
	Warnings []string `json:"warnings,omitempty"`
}

type bookingListResponse struct {
	Data       []domain.Booking `json:"data"`
	Pagination pagination       `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// CreateBooking handles POST /bookings.
func (s *Server) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var body createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid JSON body: "+err.Error())
		return
	}

	in, err := requestToBookingInput(body)
	if err != nil {
		requestError(w, err.Error())
		return
	}

	result, err := s.bookings.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, bookingResponse{Booking: result.Booking, Warnings: result.Warnings})
}

// ListBookings handles GET /bookings.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	bookings, total, err := s.bookings.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingListResponse{
		Data: bookings,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetBooking handles GET /bookings/{id}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	booking, err := s.bookings.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// CancelBooking handles POST /bookings/{id}/cancel.
func (s *Server) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	result, err := s.bookings.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingResponse{Booking: result.Booking, Warnings: result.Warnings})
}

// CompleteBooking handles POST /bookings/{id}/complete.
// The body records the return: the odometer reading and optional notes.
func (s *Server) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	var body completeBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "invalid JSON body: "+err.Error())
		return
	}

	result, err := s.bookings.Complete(r.Context(), id, service.ReturnDetails{
		Mileage: body.Mileage,
		Notes:   body.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingResponse{Booking: result.Booking, Warnings: result.Warnings})
}

// MarkBookingNoShow handles POST /bookings/{id}/no-show.
func (s *Server) MarkBookingNoShow(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		requestError(w, "id must be a valid UUID")
		return
	}

	booking, err := s.bookings.MarkNoShow(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// --- mapping helpers --------------------------------------------------------

// requestToBookingInput converts the request body into the service input.
// Only shape problems are rejected here; range validity, existence, and
// availability are the service's call.
func requestToBookingInput(body createBookingRequest) (service.CreateBookingInput, error) {
	if body.VehicleID == uuid.Nil {
		return service.CreateBookingInput{}, errors.New("vehicle_id is required")
	}
	if body.ClientID == uuid.Nil {
		return service.CreateBookingInput{}, errors.New("client_id is required")
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		return service.CreateBookingInput{}, errors.New("start_date must be a date in 2006-01-02 form")
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		return service.CreateBookingInput{}, errors.New("end_date must be a date in 2006-01-02 form")
	}

	in := service.CreateBookingInput{
		VehicleID: body.VehicleID,
		ClientID:  body.ClientID,
		Start:     start,
		End:       end,
		Pickup:    body.Pickup,
		Dropoff:   body.Dropoff,
		Notes:     body.Notes,
	}
	if body.Payment != nil {
		if body.Payment.Method == "" {
			return service.CreateBookingInput{}, errors.New("payment.method is required when payment is given")
		}
		in.Payment = &service.PaymentInput{Method: body.Payment.Method}
	}
	return in, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// queryInt reads an optional positive integer query parameter; nil when
// absent or unparseable, letting NewPaginationParams apply its defaults.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
