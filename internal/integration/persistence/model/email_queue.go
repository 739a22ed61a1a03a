package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/strategic-planning/backend/internal/domain/entity"
)

// EmailQueueModel is one queued plan notification.
type EmailQueueModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	PlanID         uuid.UUID         `gorm:"type:uuid;index"`
	TemplateType   string            `gorm:"type:varchar(50);not null"`
	RecipientEmail string            `gorm:"type:varchar(255);not null"`
	RecipientName  string            `gorm:"type:varchar(255)"`
	Subject        string            `gorm:"type:varchar(500);not null"`
	TemplateData   map[string]string `gorm:"type:jsonb;serializer:json"`
	Status         string            `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due"`
	Attempts       int               `gorm:"not null;default:0"`
	MaxAttempts    int               `gorm:"not null;default:3"`
	LastError      string            `gorm:"type:text"`
	ResendID       string            `gorm:"type:varchar(100)"`
	CreatedAt      time.Time         `gorm:"not null"`
	ScheduledAt    time.Time         `gorm:"not null;index:idx_email_queue_due"`
	ProcessedAt    sql.NullTime      `gorm:"default:null"`
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to a domain EmailJob.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := m.TemplateData
	if data == nil {
		data = map[string]string{}
	}

	job := &entity.EmailJob{
		ID:             m.ID,
		PlanID:         m.PlanID,
		TemplateType:   entity.EmailTemplateType(m.TemplateType),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
	}
	if m.ProcessedAt.Valid {
		processed := m.ProcessedAt.Time
		job.ProcessedAt = &processed
	}
	return job
}

// EmailQueueModelFromEntity creates an EmailQueueModel from a domain EmailJob.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	row := &EmailQueueModel{
		ID:             job.ID,
		PlanID:         job.PlanID,
		TemplateType:   string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   job.TemplateData,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
	}
	if row.TemplateData == nil {
		row.TemplateData = map[string]string{}
	}
	if job.ProcessedAt != nil {
		row.ProcessedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}
	return row
}
