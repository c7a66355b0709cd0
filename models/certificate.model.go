package models

import "time"

// Certificate is written once per (user, course) and never updated.
type Certificate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_certificates_user_course,priority:1" json:"user_id"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_certificates_user_course,priority:2" json:"course_id"`
	IssueDate time.Time `gorm:"not null" json:"issue_date"`
}

func (Certificate) TableName() string { return "certificates" }

// CertificateView carries everything printed on a certificate.
type CertificateView struct {
	UserID     uint      `json:"user_id"`
	CourseID   uint      `json:"course_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CourseName string    `json:"course_name"`
	CourseCode string    `json:"course_code"`
	IssueDate  time.Time `json:"issue_date"`
}

func (v CertificateView) FullName() string {
	return v.FirstName + " " + v.LastName
}
