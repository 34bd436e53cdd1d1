// Package outboxrepo implements the notification outbox over GORM.
// Notices are written inside the mutating transaction and drained later
// by the relay job.
package outboxrepo

import (
	"time"

	"packagetracker/internal/core/ports"
)

// NoticeDTO represents one stored email notice. SentAt stays NULL until
// the relay job delivers the notice; the index serves the pending scan.
type NoticeDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	RecipientName  string
	RecipientEmail string
	Subject        string
	Body           string
	CreatedAt      time.Time
	SentAt         *time.Time `gorm:"index"`
	Attempts       int
}

// TableName overrides GORM's default naming to use "notification_outbox".
func (NoticeDTO) TableName() string {
	return "notification_outbox"
}

func toNotice(dto NoticeDTO) ports.Notice {
	return ports.Notice{
		ID:             dto.ID,
		RecipientName:  dto.RecipientName,
		RecipientEmail: dto.RecipientEmail,
		Subject:        dto.Subject,
		Body:           dto.Body,
		CreatedAt:      dto.CreatedAt,
		SentAt:         dto.SentAt,
		Attempts:       dto.Attempts,
	}
}
