package repository

import (
	"context"

	"gorm.io/gorm"

	dbpkg "github.com/SalonVioleta/nail-scheduler/internal/db"
	domain "github.com/SalonVioleta/nail-scheduler/internal/domain/appointment"
	"github.com/SalonVioleta/nail-scheduler/internal/httperr"
	"github.com/SalonVioleta/nail-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) SlotTaken(
	ctx context.Context,
	date string,
	time string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND time = ? AND status <> ?",
			date, time, string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		// The partial unique index is the authoritative conflict signal:
		// a concurrent insert that won the slot surfaces here.
		if httperr.IsUniqueViolation(err, dbpkg.SlotConstraint) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&ap, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		// A status change out of cancelada re-occupies the slot, so the
		// partial unique index can fire here just like on insert.
		if httperr.IsUniqueViolation(err, dbpkg.SlotConstraint) {
			return httperr.ErrBusiness("slot_unavailable")
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Read projections
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Order("time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("date DESC").
		Order("time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("date = ?", date).
		Order("time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Aggregation
// --------------------------------------------------

func (r *AppointmentGormRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&count).Error
	return count, err
}

func (r *AppointmentGormRepository) CountByStatus(
	ctx context.Context,
) ([]domain.StatusCount, error) {

	var rows []domain.StatusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("status", "COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) CountByService(
	ctx context.Context,
) ([]domain.ServiceCount, error) {

	var rows []domain.ServiceCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("service_type", "COUNT(*) AS count").
		Group("service_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) CountByDay(
	ctx context.Context,
	from string,
) ([]domain.DayCount, error) {

	var rows []domain.DayCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("date", "COUNT(*) AS count").
		Where("date >= ?", from).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *AppointmentGormRepository) CountByDate(
	ctx context.Context,
	date string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}

func (r *AppointmentGormRepository) CountDistinctOwners(
	ctx context.Context,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

func (r *AppointmentGormRepository) CountUsersByRole(
	ctx context.Context,
) ([]domain.RoleCount, error) {

	var rows []domain.RoleCount
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("role", "COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
