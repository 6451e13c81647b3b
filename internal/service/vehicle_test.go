package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/service"
)

func TestVehicleService_Create_OK(t *testing.T) {
	repo := &mockVehicleRepo{
		create: func(_ context.Context, v domain.Vehicle) (domain.Vehicle, error) {
			v.ID = uuid.New()
			return v, nil
		},
	}
	svc := service.NewVehicleService(repo)

	created, err := svc.Create(context.Background(), domain.Vehicle{
		Plate: "B-RT 1234", Type: "compact", Mileage: 1000,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.VehicleAvailable, created.Status, "status defaults to available")
}

func TestVehicleService_Create_Validation(t *testing.T) {
	svc := service.NewVehicleService(&mockVehicleRepo{
		create: func(_ context.Context, _ domain.Vehicle) (domain.Vehicle, error) {
			t.Fatal("repo must not be reached for invalid input")
			return domain.Vehicle{}, nil
		},
	})

	cases := map[string]domain.Vehicle{
		"missing plate":    {Type: "compact"},
		"missing type":     {Plate: "B-RT 1234"},
		"negative mileage": {Plate: "B-RT 1234", Type: "compact", Mileage: -1},
	}
	for name, vehicle := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), vehicle)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestVehicleService_List_NeverNil(t *testing.T) {
	svc := service.NewVehicleService(&mockVehicleRepo{
		list: func(_ context.Context) ([]domain.Vehicle, error) { return nil, nil },
	})

	vehicles, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestClientService_Create_Validation(t *testing.T) {
	svc := service.NewClientService(&mockClientRepo{})

	_, err := svc.Create(context.Background(), domain.Client{Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument, "name required")

	_, err = svc.Create(context.Background(), domain.Client{Name: "Ada", Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument, "email must look like one")
}

func TestClientService_Create_OK(t *testing.T) {
	svc := service.NewClientService(&mockClientRepo{
		create: func(_ context.Context, c domain.Client) (domain.Client, error) {
			c.ID = uuid.New()
			return c, nil
		},
	})

	created, err := svc.Create(context.Background(), domain.Client{Name: "Ada", Email: "ada@example.com"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}
