package repository

import (
	"context"
	"time"

	"github.com/pattanan23/elearnnig-it/apperror"
	"github.com/pattanan23/elearnnig-it/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressInput struct {
	UserID       uint
	CourseID     uint
	LessonID     uint
	SavedSeconds int
	Status       string
}

// UpsertProgress keeps exactly one row per (user, lesson); the latest write wins.
func (s *Store) UpsertProgress(ctx context.Context, in ProgressInput) (*models.VideoProgress, error) {
	if in.UserID == 0 || in.CourseID == 0 || in.LessonID == 0 {
		return nil, apperror.Validation("User, course and lesson ids are required")
	}
	if err := checkStatus(in.Status); err != nil {
		return nil, err
	}
	if in.SavedSeconds < 0 {
		return nil, apperror.InvalidField("savedSeconds", "Saved seconds must not be negative")
	}
	if err := upsertProgress(s.conn(ctx), in, s.now()); err != nil {
		return nil, err
	}
	return s.GetProgress(ctx, in.UserID, in.CourseID, in.LessonID)
}

func upsertProgress(db *gorm.DB, in ProgressInput, ts time.Time) error {
	row := models.VideoProgress{
		UserID:       in.UserID,
		CourseID:     in.CourseID,
		LessonID:     in.LessonID,
		SavedSeconds: in.SavedSeconds,
		CourseStatus: in.Status,
		UpdatedAt:    ts,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"course_id", "saved_seconds", "course_status", "updated_at"}),
	}).Create(&row).Error
	return mapDBError(err, "Failed to save progress")
}

func (s *Store) GetProgress(ctx context.Context, userID, courseID, lessonID uint) (*models.VideoProgress, error) {
	var row models.VideoProgress
	err := s.conn(ctx).
		Where("user_id = ? AND course_id = ? AND lesson_id = ?", userID, courseID, lessonID).
		First(&row).Error
	if err != nil {
		return nil, mapDBError(err, "Progress not found")
	}
	return &row, nil
}

// LatestProgress returns the most recently touched lesson of a course.
func (s *Store) LatestProgress(ctx context.Context, userID, courseID uint) (*models.VideoProgress, error) {
	var row models.VideoProgress
	err := s.conn(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("updated_at DESC").Order("id DESC").
		First(&row).Error
	if err != nil {
		return nil, mapDBError(err, "Progress not found")
	}
	return &row, nil
}

func (s *Store) ListProgress(ctx context.Context, userID, courseID uint) ([]models.VideoProgress, error) {
	rows := []models.VideoProgress{}
	err := s.conn(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("lesson_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, mapDBError(err, "Failed to fetch progress")
	}
	return rows, nil
}

func validStatus(status string) bool {
	switch status {
	case models.StatusNew, models.StatusContinue, models.StatusComplete, models.StatusReview:
		return true
	}
	return false
}

func checkStatus(status string) error {
	if !validStatus(status) {
		return apperror.InvalidField("courseStatus", "Invalid course status")
	}
	return nil
}
