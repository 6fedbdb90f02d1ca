package postgres

import (
	"context"
	"time"

	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/repository"
	"expatmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Select("title", "description", "category", "price", "currency", "pricing_unit",
			"duration_minutes", "city", "is_active", "updated_at").
		Updates(fromServiceDomain(service))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// ListServices lists active services, newest first.
func (repo *serviceRepository) ListServices(ctx context.Context, category, city string, limit, offset int) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	query := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if city != "" {
		query = query.Where("city ILIKE ?", escapeLike(city))
	}

	if err := query.Scopes(paginate(limit, offset)).Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

func (repo *serviceRepository) CreateBooking(ctx context.Context, booking *entity.ServiceBooking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.ServiceBooking, error) {
	var bookingM model.ServiceBookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *serviceRepository) UpdateBookingStatus(ctx context.Context, booking *entity.ServiceBooking) error {
	updatedAt := booking.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceBookingModel{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"status":        string(booking.Status),
			"cancel_reason": booking.CancelReason,
			"updated_at":    updatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// ListBookingsByUser lists bookings where the user is the customer or the provider.
func (repo *serviceRepository) ListBookingsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ServiceBooking, error) {
	var bookingModels []*model.ServiceBookingModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? OR provider_id = ?", userID, userID).
		Order("scheduled_at DESC").
		Scopes(paginate(limit, offset)).
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings by user")
	}

	bookings := make([]*entity.ServiceBooking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// --- Mapper Functions ---

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		VendorID:        data.VendorID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Price:           data.Price,
		Currency:        data.Currency,
		PricingUnit:     entity.PricingUnit(data.PricingUnit),
		DurationMinutes: data.DurationMinutes,
		City:            data.City,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:              data.ID,
		ProviderID:      data.ProviderID,
		VendorID:        data.VendorID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Price:           data.Price,
		Currency:        data.Currency,
		PricingUnit:     string(data.PricingUnit),
		DurationMinutes: data.DurationMinutes,
		City:            data.City,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toBookingDomain(data *model.ServiceBookingModel) *entity.ServiceBooking {
	if data == nil {
		return nil
	}

	return &entity.ServiceBooking{
		ID:           data.ID,
		ServiceID:    data.ServiceID,
		CustomerID:   data.CustomerID,
		ProviderID:   data.ProviderID,
		ScheduledAt:  data.ScheduledAt,
		Status:       entity.BookingStatus(data.Status),
		Price:        data.Price,
		Currency:     data.Currency,
		Notes:        data.Notes,
		CancelReason: data.CancelReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.ServiceBooking) *model.ServiceBookingModel {
	if data == nil {
		return nil
	}

	return &model.ServiceBookingModel{
		ID:           data.ID,
		ServiceID:    data.ServiceID,
		CustomerID:   data.CustomerID,
		ProviderID:   data.ProviderID,
		ScheduledAt:  data.ScheduledAt,
		Status:       string(data.Status),
		Price:        data.Price,
		Currency:     data.Currency,
		Notes:        data.Notes,
		CancelReason: data.CancelReason,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
