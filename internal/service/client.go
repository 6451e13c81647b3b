package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/repo"
)

// ClientService implements the minimal client operations the booking flow
// needs: register and look up.
type ClientService struct {
	clients repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided repo.
func NewClientService(clients repo.ClientRepo) *ClientService {
	return &ClientService{clients: clients}
}

// Create validates and registers a new client.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (domain.Client, error) {
	if strings.TrimSpace(client.Name) == "" {
		return domain.Client{}, fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if !strings.Contains(client.Email, "@") {
		return domain.Client{}, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidArgument)
	}
	result, err := s.clients.Create(ctx, client)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single client by ID.
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	result, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", err)
	}
	return result, nil
}
