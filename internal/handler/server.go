// Package handler implements the HTTP handlers for the rental API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, booking.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/service"
)

// BookingServicer defines the business operations the booking handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type BookingServicer interface {
	Create(ctx context.Context, in service.CreateBookingInput) (service.BookingResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Booking, error)
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Booking, int64, error)
	Cancel(ctx context.Context, id uuid.UUID) (service.BookingResult, error)
	Complete(ctx context.Context, id uuid.UUID, details service.ReturnDetails) (service.BookingResult, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (domain.Booking, error)
}

// VehicleServicer defines the business operations the vehicle handler depends on.
type VehicleServicer interface {
	Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}

// ClientServicer defines the business operations the client handler depends on.
type ClientServicer interface {
	Create(ctx context.Context, client domain.Client) (domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

// Server holds the handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	bookings BookingServicer
	vehicles VehicleServicer
	clients  ClientServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(bookings BookingServicer, vehicles VehicleServicer, clients ClientServicer) *Server {
	return &Server{bookings: bookings, vehicles: vehicles, clients: clients}
}

// Routes returns the API route tree. Cross-cutting middleware (request ID,
// logging, CORS, rate limiting) is wired around this in main.go.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", s.CreateBooking)
		r.Get("/", s.ListBookings)
		r.Get("/{id}", s.GetBooking)
		r.Post("/{id}/cancel", s.CancelBooking)
		r.Post("/{id}/complete", s.CompleteBooking)
		r.Post("/{id}/no-show", s.MarkBookingNoShow)
	})

	r.Route("/vehicles", func(r chi.Router) {
		r.Post("/", s.CreateVehicle)
		r.Get("/", s.ListVehicles)
		r.Get("/{id}", s.GetVehicle)
	})

	r.Route("/clients", func(r chi.Router) {
		r.Post("/", s.CreateClient)
		r.Get("/{id}", s.GetClient)
	})

	return r
}

// urlID parses the {id} path parameter as a UUID.
func urlID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
