package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kitchenlink/internal/delivery/context"
	"kitchenlink/internal/domain/entity"
	domainerrors "kitchenlink/internal/domain/errors"
	"kitchenlink/internal/domain/repository"
	"kitchenlink/internal/domain/service"
	"kitchenlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo   repository.LocationRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo   repository.LocationRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo:   params.LocationRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLocation persists a new entry and publishes an opening event.
func (srv *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*usecase.LocationOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if input.OpeningDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("openingDate must be provided")
	}

	location := &entity.Location{
		AccountID:    input.AccountID,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		OpeningDate:  input.OpeningDate,
		LocationName: input.LocationName,
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to create location",
			slog.Int64("accountID", input.AccountID),
			slog.Any("error", err))

		return nil, err
	}

	srv.publishOpeningEvent(ctx, location)

	return &usecase.LocationOutput{Location: location}, nil
}

// publishOpeningEvent fans out the opening announcement. Publish failures
// are logged and never fail the request.
func (srv *locationService) publishOpeningEvent(ctx context.Context, location *entity.Location) {
	event := &service.OpeningEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		LocationID:   location.ID,
		AccountID:    location.AccountID,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		LocationName: location.LocationName,
		OpeningDate:  location.OpeningDate.Format(time.RFC3339),
	}

	if err := srv.eventPublisher.PublishOpeningEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish opening event",
			slog.Int64("locationID", location.ID),
			slog.Any("error", err))
	}
}

// GetLocation retrieves a single entry by id.
func (srv *locationService) GetLocation(ctx context.Context, locationID int64) (*usecase.LocationOutput, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("location not found")
		}

		return nil, errors.Wrap(err, "failed to load location")
	}

	return &usecase.LocationOutput{Location: location}, nil
}

// ListLocations retrieves all entries owned by an account.
func (srv *locationService) ListLocations(ctx context.Context, accountID int64) (*usecase.LocationListOutput, error) {
	locations, err := srv.locationRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return &usecase.LocationListOutput{Locations: locations}, nil
}

// UpdateLocation modifies an entry after verifying ownership.
func (srv *locationService) UpdateLocation(ctx context.Context, input *usecase.UpdateLocationInput) (*usecase.LocationOutput, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	location, err := srv.loadOwnedLocation(ctx, input.LocationID, input.AccountID)
	if err != nil {
		return nil, err
	}

	location.Latitude = input.Latitude
	location.Longitude = input.Longitude
	location.OpeningDate = input.OpeningDate
	location.LocationName = input.LocationName

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to update location",
			slog.Int64("locationID", input.LocationID),
			slog.Any("error", err))

		return nil, err
	}

	return &usecase.LocationOutput{Location: location}, nil
}

// DeleteLocation removes an entry after verifying ownership.
func (srv *locationService) DeleteLocation(ctx context.Context, locationID, accountID int64) error {
	if _, err := srv.loadOwnedLocation(ctx, locationID, accountID); err != nil {
		return err
	}

	if err := srv.locationRepo.Delete(ctx, locationID); err != nil {
		srv.log(ctx).Error("Failed to delete location",
			slog.Int64("locationID", locationID),
			slog.Any("error", err))

		return err
	}

	return nil
}

// loadOwnedLocation fetches a location and verifies the caller owns it.
func (srv *locationService) loadOwnedLocation(ctx context.Context, locationID, accountID int64) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("location not found")
		}

		return nil, errors.Wrap(err, "failed to load location")
	}
	if location.AccountID != accountID {
		return nil, domainerrors.ErrForbidden.WrapMessage("location belongs to a different account")
	}

	return location, nil
}

// validateCoordinates rejects out-of-range latitude/longitude pairs.
func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return domainerrors.ErrValidationFailed.WrapMessage("latitude out of range")
	}
	if longitude < -180 || longitude > 180 {
		return domainerrors.ErrValidationFailed.WrapMessage("longitude out of range")
	}

	return nil
}
