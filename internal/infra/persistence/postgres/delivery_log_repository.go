// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const deliveryLogBatchSize = 100

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// BatchCreateDeliveryLogs persists multiple log entries in batches.
func (repo *deliveryLogRepository) BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, deliveryLogBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("incomplete delivery log in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create delivery logs")
	}

	// Copy generated ids back to the caller's entities.
	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindDeliveryLogsByListing returns the newest logs for a listing.
func (repo *deliveryLogRepository) FindDeliveryLogsByListing(ctx context.Context, listingID uuid.UUID, limit int) ([]*entity.DeliveryLog, error) {
	var logModels []*model.DeliveryLogModel

	query := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("sent_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery logs by listing")
	}

	logs := make([]*entity.DeliveryLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toDeliveryLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toDeliveryLogDomain converts a GORM DeliveryLogModel to a domain DeliveryLog entity.
func toDeliveryLogDomain(data *model.DeliveryLogModel) *entity.DeliveryLog {
	if data == nil {
		return nil
	}

	return &entity.DeliveryLog{
		ID:         data.ID,
		ListingID:  data.ListingID,
		ZoneID:     data.ZoneID,
		Recipient:  data.Recipient,
		DistanceKm: data.DistanceKm,
		Status:     entity.DeliveryStatus(data.Status),
		Reason:     data.Reason,
		SentAt:     data.SentAt,
	}
}

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:         data.ID,
		ListingID:  data.ListingID,
		ZoneID:     data.ZoneID,
		Recipient:  data.Recipient,
		DistanceKm: data.DistanceKm,
		Status:     string(data.Status),
		Reason:     data.Reason,
		SentAt:     data.SentAt,
	}
}
