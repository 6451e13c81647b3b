package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/handler"
)

type mockClientServicer struct {
	create  func(ctx context.Context, c domain.Client) (domain.Client, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Client, error)
}

func (m *mockClientServicer) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	return m.create(ctx, c)
}
func (m *mockClientServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	return m.getByID(ctx, id)
}

var _ handler.ClientServicer = (*mockClientServicer)(nil)

func newClientHandler(svc handler.ClientServicer) http.Handler {
	return handler.NewServer(nil, nil, svc).Routes()
}

func TestCreateClient_201(t *testing.T) {
	id := uuid.New()
	svc := &mockClientServicer{
		create: func(_ context.Context, c domain.Client) (domain.Client, error) {
			assert.Equal(t, "Ada Lovelace", c.Name)
			c.ID = id
			return c, nil
		},
	}

	body := jsonBody(t, map[string]any{"name": "Ada Lovelace", "email": "ada@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/clients", body)
	rec := httptest.NewRecorder()
	newClientHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp domain.Client
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, id, resp.ID)
}

func TestCreateClient_422_MissingName(t *testing.T) {
	svc := &mockClientServicer{
		create: func(_ context.Context, _ domain.Client) (domain.Client, error) {
			return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w: name is required", domain.ErrInvalidArgument)
		},
	}

	body := jsonBody(t, map[string]any{"email": "ada@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/clients", body)
	rec := httptest.NewRecorder()
	newClientHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", decodeErrorCode(t, rec))
}

func TestGetClient_404(t *testing.T) {
	svc := &mockClientServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Client, error) {
			return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/clients/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newClientHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
