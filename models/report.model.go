package models

import "time"

const (
	ReportPending  = "pending"
	ReportReviewed = "reviewed"
	ReportResolved = "resolved"
)

type Report struct {
	ReportID   uint      `gorm:"column:report_id;primaryKey" json:"report_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Category   string    `gorm:"size:100;not null" json:"category"`
	ReportMess string    `gorm:"type:text;not null" json:"report_mess"`
	Status     *string   `gorm:"size:20" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Report) TableName() string { return "reports" }
