package postgres

import (
	"context"

	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{db: db}
}

func (repo *notificationLogRepository) Create(ctx context.Context, log *entity.NotificationLog) error {
	logM := fromNotificationLogDomain(log)
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write notification log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *notificationLogRepository) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.NotificationLog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.NotificationLogModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count notification logs")
	}

	var logModels []*model.NotificationLogModel
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&logModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list notification logs")
	}

	logs := make([]*entity.NotificationLog, len(logModels))
	for i, logM := range logModels {
		logs[i] = toNotificationLogDomain(logM)
	}

	return logs, total, nil
}

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	return &entity.NotificationLog{
		ID:           data.ID,
		ScheduleID:   data.ScheduleID,
		UserID:       data.UserID,
		Channel:      entity.NotificationChannel(data.Channel),
		Status:       entity.NotificationStatus(data.Status),
		MessageID:    data.MessageID,
		ErrorMessage: data.ErrorMessage,
		CreatedAt:    data.CreatedAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	return &model.NotificationLogModel{
		ID:           data.ID,
		ScheduleID:   data.ScheduleID,
		UserID:       data.UserID,
		Channel:      string(data.Channel),
		Status:       string(data.Status),
		MessageID:    data.MessageID,
		ErrorMessage: data.ErrorMessage,
		CreatedAt:    data.CreatedAt,
	}
}
