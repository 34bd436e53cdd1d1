package outboxrepo

import (
	"context"
	"time"

	"packagetracker/internal/core/ports"

	"gorm.io/gorm"
)

// GormNotificationOutbox implements NotificationOutbox using GORM.
type GormNotificationOutbox struct {
	db *gorm.DB
}

// NewGormNotificationOutbox creates a new GORM notification outbox.
func NewGormNotificationOutbox(db *gorm.DB) *GormNotificationOutbox {
	return &GormNotificationOutbox{db: db}
}

// Enqueue stores a pending notice for the given message.
func (o *GormNotificationOutbox) Enqueue(ctx context.Context, m ports.Message) error {
	dto := NoticeDTO{
		RecipientName:  m.RecipientName,
		RecipientEmail: m.RecipientEmail,
		Subject:        m.Subject,
		Body:           m.Body,
		CreatedAt:      time.Now().UTC(),
	}
	return o.db.WithContext(ctx).Create(&dto).Error
}

// Pending retrieves up to limit unsent notices, oldest first.
func (o *GormNotificationOutbox) Pending(ctx context.Context, limit int) ([]ports.Notice, error) {
	var dtos []NoticeDTO
	err := o.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notices := make([]ports.Notice, 0, len(dtos))
	for _, dto := range dtos {
		notices = append(notices, toNotice(dto))
	}

	return notices, nil
}

// MarkSent records a successful delivery.
func (o *GormNotificationOutbox) MarkSent(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return o.db.WithContext(ctx).Model(&NoticeDTO{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sent_at":  &now,
			"attempts": gorm.Expr("attempts + 1"),
		}).Error
}

// MarkFailed bumps the attempt counter after a transport failure so the
// notice is retried on a later pass.
func (o *GormNotificationOutbox) MarkFailed(ctx context.Context, id int64) error {
	return o.db.WithContext(ctx).Model(&NoticeDTO{}).
		Where("id = ?", id).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}
