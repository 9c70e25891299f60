package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/service"
	mockRepo "kitchenlink/internal/mocks/repository"
	mockService "kitchenlink/internal/mocks/service"
	"kitchenlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationServiceForTest(t *testing.T) (usecase.LocationUsecase, *mockRepo.MockLocationRepository, *mockService.MockEventPublisher) {
	t.Helper()

	locationRepo := mockRepo.NewMockLocationRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLocationService(LocationServiceParams{
		LocationRepo:   locationRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	return svc, locationRepo, eventPublisher
}

func TestLocationService_CreateLocation_PublishesOpeningEvent(t *testing.T) {
	svc, locationRepo, eventPublisher := newLocationServiceForTest(t)

	ctx := context.Background()
	opening := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)

	locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)
	eventPublisher.EXPECT().
		PublishOpeningEvent(ctx, mock.AnythingOfType("*service.OpeningEvent")).
		Run(func(ctx context.Context, event *service.OpeningEvent) {
			assert.Equal(t, int64(2), event.AccountID)
			assert.Equal(t, "Station Square", event.LocationName)
		}).
		Return(nil)

	output, err := svc.CreateLocation(ctx, &usecase.CreateLocationInput{
		AccountID:    2,
		Latitude:     35.68,
		Longitude:    139.76,
		OpeningDate:  opening,
		LocationName: "Station Square",
	})

	require.NoError(t, err)
	assert.Equal(t, "Station Square", output.Location.LocationName)
}

func TestLocationService_CreateLocation_PublishFailureTolerated(t *testing.T) {
	svc, locationRepo, eventPublisher := newLocationServiceForTest(t)

	ctx := context.Background()
	locationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Location")).
		Return(nil)
	eventPublisher.EXPECT().
		PublishOpeningEvent(ctx, mock.AnythingOfType("*service.OpeningEvent")).
		Return(errors.New("broker unreachable"))

	output, err := svc.CreateLocation(ctx, &usecase.CreateLocationInput{
		AccountID:   2,
		Latitude:    35.68,
		Longitude:   139.76,
		OpeningDate: time.Now().Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestLocationService_CreateLocation_MissingOpeningDate(t *testing.T) {
	svc, _, _ := newLocationServiceForTest(t)

	output, err := svc.CreateLocation(context.Background(), &usecase.CreateLocationInput{
		AccountID: 2,
		Latitude:  35.68,
		Longitude: 139.76,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestLocationService_UpdateLocation_NotOwner(t *testing.T) {
	svc, locationRepo, _ := newLocationServiceForTest(t)

	ctx := context.Background()
	locationRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Location{ID: 5, AccountID: 2}, nil)

	output, err := svc.UpdateLocation(ctx, &usecase.UpdateLocationInput{
		LocationID:  5,
		AccountID:   99,
		Latitude:    35.68,
		Longitude:   139.76,
		OpeningDate: time.Now(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, output)
}

func TestLocationService_DeleteLocation_Success(t *testing.T) {
	svc, locationRepo, _ := newLocationServiceForTest(t)

	ctx := context.Background()
	locationRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Location{ID: 5, AccountID: 2}, nil)
	locationRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteLocation(ctx, 5, 2))
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
	}{
		{"valid", 35.68, 139.76, false},
		{"north pole", 90, 0, false},
		{"latitude too high", 90.1, 0, true},
		{"latitude too low", -90.1, 0, true},
		{"longitude too high", 0, 180.1, true},
		{"longitude too low", 0, -180.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCoordinates(tt.latitude, tt.longitude)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
