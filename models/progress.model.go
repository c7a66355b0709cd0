package models

import "time"

const (
	StatusNew      = "new"
	StatusContinue = "continue"
	StatusComplete = "complete"
	StatusReview   = "review"
)

// VideoProgress holds at most one row per (user, lesson).
type VideoProgress struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_video_progress_user_lesson,priority:1" json:"user_id"`
	CourseID     uint      `gorm:"not null;index" json:"course_id"`
	LessonID     uint      `gorm:"not null;uniqueIndex:idx_video_progress_user_lesson,priority:2" json:"lesson_id"`
	SavedSeconds int       `gorm:"not null" json:"saved_seconds"`
	CourseStatus string    `gorm:"size:20;not null" json:"course_status"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (VideoProgress) TableName() string { return "video_progress" }
